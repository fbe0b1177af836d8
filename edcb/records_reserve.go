package edcb

import "time"

// RecFileSetInfo names where and how a recording is written to disk.
type RecFileSetInfo struct {
	RecFolder     string
	WritePlugIn   string
	RecNamePlugIn string
}

func readRecFileSetInfo(r *reader, limit int) (RecFileSetInfo, error) {
	var v RecFileSetInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.RecFolder, err = r.readString(end); err != nil {
		return v, err
	}
	if v.WritePlugIn, err = r.readString(end); err != nil {
		return v, err
	}
	if v.RecNamePlugIn, err = r.readString(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeRecFileSetInfo(w *writer, v RecFileSetInfo) {
	w.writeStruct(func(w *writer) {
		w.writeString(v.RecFolder)
		w.writeString(v.WritePlugIn)
		w.writeString(v.RecNamePlugIn)
	})
}

// RecSettingData holds the recording parameters attached to a reservation.
// StartMargin and EndMargin are either both present or both absent; the
// wire encodes that invariant with a single leading use-margin byte
// instead of two independent presence flags.
type RecSettingData struct {
	RecMode          int32
	Priority         byte
	TuijyuuFlag      bool
	ServiceMode      int32
	PittariFlag      bool
	BatFilePath      string
	RecFolderList    []RecFileSetInfo
	SuspendMode      int32
	RebootFlag       bool
	StartMargin      *int32
	EndMargin        *int32
	ContinueRecFlag  bool
	PartialRecFlag   byte
	Tuner            int32
	PartialRecFolder []RecFileSetInfo
}

func readRecSettingData(r *reader, limit int) (RecSettingData, error) {
	var v RecSettingData
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.RecMode, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.Priority, err = r.readByte(end); err != nil {
		return v, err
	}
	tuijyuu, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	v.TuijyuuFlag = tuijyuu != 0
	if v.ServiceMode, err = r.readInt32(end); err != nil {
		return v, err
	}
	pittari, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	v.PittariFlag = pittari != 0
	if v.BatFilePath, err = r.readString(end); err != nil {
		return v, err
	}
	if v.RecFolderList, err = readVector(r, end, readRecFileSetInfo); err != nil {
		return v, err
	}
	if v.SuspendMode, err = r.readInt32(end); err != nil {
		return v, err
	}
	reboot, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	v.RebootFlag = reboot != 0

	useMargin, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	startMargin, err := r.readInt32(end)
	if err != nil {
		return v, err
	}
	endMargin, err := r.readInt32(end)
	if err != nil {
		return v, err
	}
	if useMargin != 0 {
		v.StartMargin = &startMargin
		v.EndMargin = &endMargin
	}

	continueRec, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	v.ContinueRecFlag = continueRec != 0
	if v.PartialRecFlag, err = r.readByte(end); err != nil {
		return v, err
	}
	if v.Tuner, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.PartialRecFolder, err = readVector(r, end, readRecFileSetInfo); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeRecSettingData(w *writer, v RecSettingData) {
	w.writeStruct(func(w *writer) {
		w.writeInt32(v.RecMode)
		w.writeByte(v.Priority)
		w.writeByte(boolToFlag(v.TuijyuuFlag))
		w.writeInt32(v.ServiceMode)
		w.writeByte(boolToFlag(v.PittariFlag))
		w.writeString(v.BatFilePath)
		writeVector(w, v.RecFolderList, writeRecFileSetInfo)
		w.writeInt32(v.SuspendMode)
		w.writeByte(boolToFlag(v.RebootFlag))

		useMargin := v.StartMargin != nil && v.EndMargin != nil
		w.writeByte(boolToFlag(useMargin))
		if v.StartMargin != nil {
			w.writeInt32(*v.StartMargin)
		} else {
			w.writeInt32(0)
		}
		if v.EndMargin != nil {
			w.writeInt32(*v.EndMargin)
		} else {
			w.writeInt32(0)
		}

		w.writeByte(boolToFlag(v.ContinueRecFlag))
		w.writeByte(v.PartialRecFlag)
		w.writeInt32(v.Tuner)
		writeVector(w, v.PartialRecFolder, writeRecFileSetInfo)
	})
}

// ReserveData is a single scheduled (or active) recording reservation.
// Three fields are reserved for future protocol expansion; they round-trip
// as the wire's neutral zero values and are never exposed.
type ReserveData struct {
	ReserveID      int32
	Title          string
	StartTime      time.Time
	DurationSecond int32
	StationName    string
	ONID           uint16
	TSID           uint16
	SID            uint16
	EID            uint16
	Comment        string
	RecSetting     RecSettingData
	OverlapMode    byte
	StartTimeEpg   time.Time
}

func readReserveData(r *reader, limit int) (ReserveData, error) {
	var v ReserveData
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.ReserveID, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.Title, err = r.readString(end); err != nil {
		return v, err
	}
	if v.StartTime, err = r.readSystemTime(end); err != nil {
		return v, err
	}
	if v.DurationSecond, err = r.readInt32(end); err != nil {
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
	if v.EID, err = r.readUint16(end); err != nil {
		return v, err
	}
	if v.Comment, err = r.readString(end); err != nil {
		return v, err
	}
	if v.RecSetting, err = readRecSettingData(r, end); err != nil {
		return v, err
	}
	if v.OverlapMode, err = r.readByte(end); err != nil {
		return v, err
	}
	if v.StartTimeEpg, err = r.readSystemTime(end); err != nil {
		return v, err
	}
	// reserved: a zero byte, an empty string, a zero int, in this order.
	if _, err = r.readByte(end); err != nil {
		return v, err
	}
	if _, err = r.readString(end); err != nil {
		return v, err
	}
	if _, err = r.readInt32(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeReserveData(w *writer, v ReserveData) {
	w.writeStruct(func(w *writer) {
		w.writeInt32(v.ReserveID)
		w.writeString(v.Title)
		w.writeSystemTime(v.StartTime)
		w.writeInt32(v.DurationSecond)
		w.writeString(v.StationName)
		w.writeUint16(v.ONID)
		w.writeUint16(v.TSID)
		w.writeUint16(v.SID)
		w.writeUint16(v.EID)
		w.writeString(v.Comment)
		writeRecSettingData(w, v.RecSetting)
		w.writeByte(v.OverlapMode)
		w.writeSystemTime(v.StartTimeEpg)
		w.writeByte(0)
		w.writeString("")
		w.writeInt32(0)
	})
}

// TunerReserveInfo reports which reservations are currently bound to which
// tuner.
type TunerReserveInfo struct {
	TunerID     int32
	TunerName   string
	ReserveList []int32
}

func readTunerReserveInfo(r *reader, limit int) (TunerReserveInfo, error) {
	var v TunerReserveInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.TunerID, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.TunerName, err = r.readString(end); err != nil {
		return v, err
	}
	if v.ReserveList, err = readVector(r, end, func(r *reader, limit int) (int32, error) {
		return r.readInt32(limit)
	}); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}
