package edcb

import "context"

// DelAutoAdd deletes the keyword-search auto-add rules with the given IDs.
func (c *Client) DelAutoAdd(ctx context.Context, ids []int32) error {
	_, err := c.call(ctx, opDelAutoAdd, false, func(w *writer) {
		writeInt32Vector(w, ids)
	})
	return err
}

// DelManuAdd deletes the manual (time-slot) auto-add rules with the given
// IDs.
func (c *Client) DelManuAdd(ctx context.Context, ids []int32) error {
	_, err := c.call(ctx, opDelManuAdd, false, func(w *writer) {
		writeInt32Vector(w, ids)
	})
	return err
}

// EnumAutoAdd2 lists all keyword-search auto-add rules.
func (c *Client) EnumAutoAdd2(ctx context.Context) ([]AutoAddData, error) {
	payload, err := c.call(ctx, opEnumAutoAdd2, true, nil)
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readVector(r, len(payload), readAutoAddData)
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}

// AddAutoAdd2 creates the given keyword-search auto-add rules.
func (c *Client) AddAutoAdd2(ctx context.Context, rules []AutoAddData) error {
	_, err := c.call(ctx, opAddAutoAdd2, true, func(w *writer) {
		writeVector(w, rules, writeAutoAddData)
	})
	return err
}

// ChgAutoAdd2 updates the given keyword-search auto-add rules (matched by
// DataID).
func (c *Client) ChgAutoAdd2(ctx context.Context, rules []AutoAddData) error {
	_, err := c.call(ctx, opChgAutoAdd2, true, func(w *writer) {
		writeVector(w, rules, writeAutoAddData)
	})
	return err
}

// EnumManuAdd2 lists all manual (fixed time-slot) auto-add rules.
func (c *Client) EnumManuAdd2(ctx context.Context) ([]ManualAutoAddData, error) {
	payload, err := c.call(ctx, opEnumManuAdd2, true, nil)
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readVector(r, len(payload), readManualAutoAddData)
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}

// AddManuAdd2 creates the given manual auto-add rules.
func (c *Client) AddManuAdd2(ctx context.Context, rules []ManualAutoAddData) error {
	_, err := c.call(ctx, opAddManuAdd2, true, func(w *writer) {
		writeVector(w, rules, writeManualAutoAddData)
	})
	return err
}

// ChgManuAdd2 updates the given manual auto-add rules (matched by DataID).
func (c *Client) ChgManuAdd2(ctx context.Context, rules []ManualAutoAddData) error {
	_, err := c.call(ctx, opChgManuAdd2, true, func(w *writer) {
		writeVector(w, rules, writeManualAutoAddData)
	})
	return err
}
