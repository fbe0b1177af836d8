package edcb

import "context"

// ViewSetBonDriver selects the BonDriver the view process should tune
// with.
func (c *Client) ViewSetBonDriver(ctx context.Context, name string) error {
	_, err := c.call(ctx, opViewSetBonDriver, false, func(w *writer) {
		w.writeString(name)
	})
	return err
}

// ViewGetBonDriver returns the currently selected BonDriver's name.
func (c *Client) ViewGetBonDriver(ctx context.Context) (string, error) {
	payload, err := c.call(ctx, opViewGetBonDriver, false, nil)
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

// ViewSetCh changes the tuned channel (or NetworkTV mode) per info.
func (c *Client) ViewSetCh(ctx context.Context, info SetChInfo) error {
	_, err := c.call(ctx, opViewSetCh, false, func(w *writer) {
		writeSetChInfo(w, info)
	})
	return err
}

// ViewAppClose closes the view process.
func (c *Client) ViewAppClose(ctx context.Context) error {
	_, err := c.call(ctx, opViewAppClose, false, nil)
	return err
}
