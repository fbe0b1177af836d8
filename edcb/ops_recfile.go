package edcb

import "context"

// DelRecInfo deletes the recorded-file records with the given IDs.
func (c *Client) DelRecInfo(ctx context.Context, ids []int32) error {
	_, err := c.call(ctx, opDelRecInfo, false, func(w *writer) {
		writeInt32Vector(w, ids)
	})
	return err
}

// ChgPathRecInfo rewrites the file path recorded against each entry (used
// after moving files the server recorded).
func (c *Client) ChgPathRecInfo(ctx context.Context, infos []RecFileInfo) error {
	_, err := c.call(ctx, opChgPathRecInfo, false, func(w *writer) {
		writeVector(w, infos, writeRecFileInfo)
	})
	return err
}

// ChgProtectRecInfo2 sets or clears each entry's protect flag.
func (c *Client) ChgProtectRecInfo2(ctx context.Context, infos []RecFileInfo) error {
	_, err := c.call(ctx, opChgProtectRecInfo2, true, func(w *writer) {
		writeVector(w, infos, writeRecFileInfo)
	})
	return err
}

// EnumRecInfoBasic2 lists all recorded-file records.
func (c *Client) EnumRecInfoBasic2(ctx context.Context) ([]RecFileInfo, error) {
	payload, err := c.call(ctx, opEnumRecInfoBasic2, true, nil)
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readVector(r, len(payload), readRecFileInfo)
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}

// GetRecInfo2 returns a single recorded-file record by ID.
func (c *Client) GetRecInfo2(ctx context.Context, id int32) (RecFileInfo, error) {
	payload, err := c.call(ctx, opGetRecInfo2, true, func(w *writer) {
		w.writeInt32(id)
	})
	if err != nil {
		return RecFileInfo{}, err
	}
	r := newReader(payload)
	v, err := readRecFileInfo(r, len(payload))
	if err != nil {
		return RecFileInfo{}, asNoResult(err)
	}
	return v, nil
}

// FileCopy streams back the raw bytes of the file at path, as the server
// sees it. The response carries no framing of its own beyond the common
// 8-byte header: the declared size bounds the raw payload directly.
func (c *Client) FileCopy(ctx context.Context, path string) ([]byte, error) {
	payload, err := c.call(ctx, opFileCopy, false, func(w *writer) {
		w.writeString(path)
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// FileCopy2 fetches several files by path in one round trip.
func (c *Client) FileCopy2(ctx context.Context, paths []string) ([]FileData, error) {
	payload, err := c.call(ctx, opFileCopy2, true, func(w *writer) {
		writeStringVector(w, paths)
	})
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readVector(r, len(payload), readFileData)
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}

// Plug-in catalogue indices for EnumPlugIn.
const (
	PlugInWrite    uint16 = 1
	PlugInRecName  uint16 = 2
)

// EnumPlugIn lists the names of installed plug-ins of the given kind
// (PlugInWrite or PlugInRecName).
func (c *Client) EnumPlugIn(ctx context.Context, index uint16) ([]string, error) {
	payload, err := c.call(ctx, opEnumPlugIn, false, func(w *writer) {
		w.writeUint16(index)
	})
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readStringVector(r, len(payload))
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}
