package edcb

import "context"

// NwTVIDSetCh opens (or retunes) a NetworkTV session and returns its id.
func (c *Client) NwTVIDSetCh(ctx context.Context, info SetChInfo) (int32, error) {
	payload, err := c.call(ctx, opNwTVIDSetCh, false, func(w *writer) {
		writeSetChInfo(w, info)
	})
	if err != nil {
		return 0, err
	}
	r := newReader(payload)
	id, err := r.readInt32(len(payload))
	if err != nil {
		return 0, asNoResult(err)
	}
	return id, nil
}

// NwTVIDClose closes the NetworkTV session with the given id.
func (c *Client) NwTVIDClose(ctx context.Context, id int32) error {
	_, err := c.call(ctx, opNwTVIDClose, false, func(w *writer) {
		w.writeInt32(id)
	})
	return err
}

// GetNetworkPath resolves a server-relative path to the path the caller
// should open it at (e.g. UNC translation for remote clients).
func (c *Client) GetNetworkPath(ctx context.Context, path string) (string, error) {
	payload, err := c.call(ctx, opGetNetworkPath, false, func(w *writer) {
		w.writeString(path)
	})
	if err != nil {
		return "", err
	}
	r := newReader(payload)
	s, err := r.readString(len(payload))
	if err != nil {
		return "", asNoResult(err)
	}
	return s, nil
}
