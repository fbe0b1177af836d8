package edcb

import "context"

// DelReserve deletes the reservations with the given IDs.
func (c *Client) DelReserve(ctx context.Context, ids []int32) error {
	_, err := c.call(ctx, opDelReserve, false, func(w *writer) {
		writeInt32Vector(w, ids)
	})
	return err
}

// EnumTunerReserve lists which reservations are bound to which tuner.
func (c *Client) EnumTunerReserve(ctx context.Context) ([]TunerReserveInfo, error) {
	payload, err := c.call(ctx, opEnumTunerReserve, false, nil)
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readVector(r, len(payload), readTunerReserveInfo)
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}

// EnumReserve2 lists all current reservations.
func (c *Client) EnumReserve2(ctx context.Context) ([]ReserveData, error) {
	payload, err := c.call(ctx, opEnumReserve2, true, nil)
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readVector(r, len(payload), readReserveData)
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}

// AddReserve2 creates the given reservations.
func (c *Client) AddReserve2(ctx context.Context, reserves []ReserveData) error {
	_, err := c.call(ctx, opAddReserve2, true, func(w *writer) {
		writeVector(w, reserves, writeReserveData)
	})
	return err
}

// ChgReserve2 updates the given reservations (matched by ReserveID).
func (c *Client) ChgReserve2(ctx context.Context, reserves []ReserveData) error {
	_, err := c.call(ctx, opChgReserve2, true, func(w *writer) {
		writeVector(w, reserves, writeReserveData)
	})
	return err
}
