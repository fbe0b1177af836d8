package edcb

import "context"

// GetStatusNotify2 returns the server's current status, or — in TCP mode
// — blocks until the server's notification counter exceeds targetCount.
// targetCount == 0 returns immediately. Callers polling for change should
// pass the Count from the previous response and give the client a
// correspondingly long SetConnectTimeOutSec budget.
func (c *Client) GetStatusNotify2(ctx context.Context, targetCount uint32) (NotifySrvInfo, error) {
	payload, err := c.call(ctx, opGetStatusNotify2, true, func(w *writer) {
		w.writeUint32(targetCount)
	})
	if err != nil {
		return NotifySrvInfo{}, err
	}
	r := newReader(payload)
	v, err := readNotifySrvInfo(r, len(payload))
	if err != nil {
		return NotifySrvInfo{}, asNoResult(err)
	}
	return v, nil
}
