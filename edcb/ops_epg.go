package edcb

import (
	"context"
	"time"
)

// EnumService lists every known broadcast service.
func (c *Client) EnumService(ctx context.Context) ([]ServiceInfo, error) {
	payload, err := c.call(ctx, opEnumService, false, nil)
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readVector(r, len(payload), readServiceInfo)
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}

// SearchPg runs one or more keyword-search clauses against the current
// EPG, OR'd together the way EDCB always combines a search key list.
func (c *Client) SearchPg(ctx context.Context, keys []SearchKeyInfo) ([]EventInfo, error) {
	payload, err := c.call(ctx, opSearchPg, false, func(w *writer) {
		writeVector(w, keys, func(w *writer, k SearchKeyInfo) { writeSearchKeyInfo(w, k, false) })
	})
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readVector(r, len(payload), readEventInfo)
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}

// EnumPgInfoEx lists current EPG events restricted to filters and the
// [begin, end) time range (§4.3).
func (c *Client) EnumPgInfoEx(ctx context.Context, filters []ServiceFilter, begin, end time.Time) ([]ServiceEventInfo, error) {
	return c.enumPg(ctx, opEnumPgInfoEx, filters, begin, end)
}

// EnumPgArc is EnumPgInfoEx against the server's archived (past) EPG data.
func (c *Client) EnumPgArc(ctx context.Context, filters []ServiceFilter, begin, end time.Time) ([]ServiceEventInfo, error) {
	return c.enumPg(ctx, opEnumPgArc, filters, begin, end)
}

func (c *Client) enumPg(ctx context.Context, opcode int32, filters []ServiceFilter, begin, end time.Time) ([]ServiceEventInfo, error) {
	payload, err := c.call(ctx, opcode, false, func(w *writer) {
		times := buildPgTimeRange(filters, begin, end)
		writeVector(w, times, func(w *writer, v int64) { w.writeInt64(v) })
	})
	if err != nil {
		return nil, err
	}
	r := newReader(payload)
	items, err := readVector(r, len(payload), readServiceEventInfo)
	if err != nil {
		return nil, asNoResult(err)
	}
	return items, nil
}
