package edcb

// AutoAddData is a standing keyword-search recording rule: any EPG event
// matching SearchInfo gets RecSetting applied automatically.
type AutoAddData struct {
	DataID     int32
	SearchInfo SearchKeyInfo
	RecSetting RecSettingData
	AddCount   int32
}

func readAutoAddData(r *reader, limit int) (AutoAddData, error) {
	var v AutoAddData
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.DataID, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.SearchInfo, err = readSearchKeyInfo(r, end, true); err != nil {
		return v, err
	}
	if v.RecSetting, err = readRecSettingData(r, end); err != nil {
		return v, err
	}
	if v.AddCount, err = r.readInt32(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeAutoAddData(w *writer, v AutoAddData) {
	w.writeStruct(func(w *writer) {
		w.writeInt32(v.DataID)
		writeSearchKeyInfo(w, v.SearchInfo, true)
		writeRecSettingData(w, v.RecSetting)
		w.writeInt32(v.AddCount)
	})
}

// ManualAutoAddData is a standing recording rule bound to a fixed
// day-of-week/time-of-day slot rather than a keyword search.
type ManualAutoAddData struct {
	DataID         int32
	DayOfWeekFlag  byte
	StartTime      int32 // seconds since local midnight
	DurationSecond int32
	Title          string
	StationName    string
	ONID           uint16
	TSID           uint16
	SID            uint16
	RecSetting     RecSettingData
}

func readManualAutoAddData(r *reader, limit int) (ManualAutoAddData, error) {
	var v ManualAutoAddData
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.DataID, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.DayOfWeekFlag, err = r.readByte(end); err != nil {
		return v, err
	}
	if v.StartTime, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.DurationSecond, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.Title, err = r.readString(end); err != nil {
		return v, err
	}
	if v.StationName, err = r.readString(end); err != nil {
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
	if v.RecSetting, err = readRecSettingData(r, end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeManualAutoAddData(w *writer, v ManualAutoAddData) {
	w.writeStruct(func(w *writer) {
		w.writeInt32(v.DataID)
		w.writeByte(v.DayOfWeekFlag)
		w.writeInt32(v.StartTime)
		w.writeInt32(v.DurationSecond)
		w.writeString(v.Title)
		w.writeString(v.StationName)
		w.writeUint16(v.ONID)
		w.writeUint16(v.TSID)
		w.writeUint16(v.SID)
		writeRecSettingData(w, v.RecSetting)
	})
}
