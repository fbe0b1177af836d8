package edcb

import "time"

// NotifySrvInfo is the server's current status/event-notification state, as
// returned by the GetStatusNotify2 long-poll. Count is the monotonic
// notification counter: callers re-invoke with Count as the next
// target_count to wait for the next change.
type NotifySrvInfo struct {
	NotifyID int32
	Time     time.Time
	Param1   int32
	Param2   int32
	Count    uint32
	Param4   string
	Param5   string
}

func readNotifySrvInfo(r *reader, limit int) (NotifySrvInfo, error) {
	var v NotifySrvInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.NotifyID, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.Time, err = r.readSystemTime(end); err != nil {
		return v, err
	}
	if v.Param1, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.Param2, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.Count, err = r.readUint32(end); err != nil {
		return v, err
	}
	if v.Param4, err = r.readString(end); err != nil {
		return v, err
	}
	if v.Param5, err = r.readString(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}
