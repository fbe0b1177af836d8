package edcb

import "time"

// RecFileInfo describes a completed (or in-progress) recording.
type RecFileInfo struct {
	ID           int32
	RecFilePath  string
	Title        string
	StartTime    time.Time
	DurationSec  int32
	ServiceName  string
	ONID         uint16
	TSID         uint16
	SID          uint16
	EID          uint16
	Drops        int64
	Scrambles    int64
	RecStatus    int32
	StartTimeEpg time.Time
	Comment      string
	ProgramInfo  string
	ErrInfo      string
	ProtectFlag  byte
}

func readRecFileInfo(r *reader, limit int) (RecFileInfo, error) {
	var v RecFileInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.ID, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.RecFilePath, err = r.readString(end); err != nil {
		return v, err
	}
	if v.Title, err = r.readString(end); err != nil {
		return v, err
	}
	if v.StartTime, err = r.readSystemTime(end); err != nil {
		return v, err
	}
	if v.DurationSec, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.ServiceName, err = r.readString(end); err != nil {
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
	if v.Drops, err = r.readInt64(end); err != nil {
		return v, err
	}
	if v.Scrambles, err = r.readInt64(end); err != nil {
		return v, err
	}
	if v.RecStatus, err = r.readInt32(end); err != nil {
		return v, err
	}
	if v.StartTimeEpg, err = r.readSystemTime(end); err != nil {
		return v, err
	}
	if v.Comment, err = r.readString(end); err != nil {
		return v, err
	}
	if v.ProgramInfo, err = r.readString(end); err != nil {
		return v, err
	}
	if v.ErrInfo, err = r.readString(end); err != nil {
		return v, err
	}
	if v.ProtectFlag, err = r.readByte(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeRecFileInfo(w *writer, v RecFileInfo) {
	w.writeStruct(func(w *writer) {
		w.writeInt32(v.ID)
		w.writeString(v.RecFilePath)
		w.writeString(v.Title)
		w.writeSystemTime(v.StartTime)
		w.writeInt32(v.DurationSec)
		w.writeString(v.ServiceName)
		w.writeUint16(v.ONID)
		w.writeUint16(v.TSID)
		w.writeUint16(v.SID)
		w.writeUint16(v.EID)
		w.writeInt64(v.Drops)
		w.writeInt64(v.Scrambles)
		w.writeInt32(v.RecStatus)
		w.writeSystemTime(v.StartTimeEpg)
		w.writeString(v.Comment)
		w.writeString(v.ProgramInfo)
		w.writeString(v.ErrInfo)
		w.writeByte(v.ProtectFlag)
	})
}

// FileData is a single file's bytes, as returned by FileCopy2. The wire
// form carries the payload length and then a reserved int (written as 0,
// ignored on read) ahead of the raw bytes.
type FileData struct {
	Name string
	Data []byte
}

func readFileData(r *reader, limit int) (FileData, error) {
	var v FileData
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.Name, err = r.readString(end); err != nil {
		return v, err
	}
	dataSize, err := r.readInt32(end)
	if err != nil {
		return v, err
	}
	if _, err = r.readInt32(end); err != nil { // reserved
		return v, err
	}
	if dataSize < 0 || end-r.pos < int(dataSize) {
		return v, ErrRead
	}
	v.Data = append([]byte(nil), r.data[r.pos:r.pos+int(dataSize)]...)
	r.pos = end
	return v, nil
}

func writeFileData(w *writer, v FileData) {
	w.writeStruct(func(w *writer) {
		w.writeString(v.Name)
		w.writeInt32(int32(len(v.Data)))
		w.writeInt32(0)
		w.buf = append(w.buf, v.Data...)
	})
}
