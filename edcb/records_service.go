package edcb

// SetChInfo requests a channel or NetworkTV-mode change.
type SetChInfo struct {
	UseSID    bool
	ONID      uint16
	TSID      uint16
	SID       uint16
	UseBonCh  bool
	SpaceOrID int32
	ChOrMode  int32
}

func writeSetChInfo(w *writer, v SetChInfo) {
	w.writeStruct(func(w *writer) {
		w.writeInt32(boolToInt32(v.UseSID))
		w.writeUint16(v.ONID)
		w.writeUint16(v.TSID)
		w.writeUint16(v.SID)
		w.writeInt32(boolToInt32(v.UseBonCh))
		w.writeInt32(v.SpaceOrID)
		w.writeInt32(v.ChOrMode)
	})
}

// ServiceInfo describes a single broadcast service (channel).
type ServiceInfo struct {
	ONID                 uint16
	TSID                 uint16
	SID                  uint16
	ServiceType          byte
	PartialReceptionFlag byte
	ServiceProviderName  string
	ServiceName          string
	NetworkName          string
	TSName               string
	RemoteControlKeyID   byte
}

func readServiceInfo(r *reader, limit int) (ServiceInfo, error) {
	var v ServiceInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.ONID, err = r.readUint16(end); err != nil {
		return v, err
	}
	if v.TSID, err = r.readUint16(end); err != nil {
		return v, err
	}
	if v.SID, err = r.readUint16(end); err != nil {
		return v, err
	}
	if v.ServiceType, err = r.readByte(end); err != nil {
		return v, err
	}
	if v.PartialReceptionFlag, err = r.readByte(end); err != nil {
		return v, err
	}
	if v.ServiceProviderName, err = r.readString(end); err != nil {
		return v, err
	}
	if v.ServiceName, err = r.readString(end); err != nil {
		return v, err
	}
	if v.NetworkName, err = r.readString(end); err != nil {
		return v, err
	}
	if v.TSName, err = r.readString(end); err != nil {
		return v, err
	}
	if v.RemoteControlKeyID, err = r.readByte(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeServiceInfo(w *writer, v ServiceInfo) {
	w.writeStruct(func(w *writer) {
		w.writeUint16(v.ONID)
		w.writeUint16(v.TSID)
		w.writeUint16(v.SID)
		w.writeByte(v.ServiceType)
		w.writeByte(v.PartialReceptionFlag)
		w.writeString(v.ServiceProviderName)
		w.writeString(v.ServiceName)
		w.writeString(v.NetworkName)
		w.writeString(v.TSName)
		w.writeByte(v.RemoteControlKeyID)
	})
}

// ServiceEventInfo pairs a ServiceInfo with its ordered EventInfo list.
type ServiceEventInfo struct {
	ServiceInfo ServiceInfo
	EventList   []EventInfo
}

func readServiceEventInfo(r *reader, limit int) (ServiceEventInfo, error) {
	var v ServiceEventInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.ServiceInfo, err = readServiceInfo(r, end); err != nil {
		return v, err
	}
	if v.EventList, err = readVector(r, end, readEventInfo); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func int32ToBool(v int32) bool {
	return v != 0
}
