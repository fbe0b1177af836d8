package edcb

import "time"

// EventInfo describes a single EPG event (programme). StartTime and
// DurationSec are optional (nil when the corresponding wire flag byte is
// zero); the seven sub-records are optional per the §4.1 sentinel rule.
type EventInfo struct {
	ONID     uint16
	TSID     uint16
	SID      uint16
	EID      uint16
	StartTime    *time.Time
	DurationSec  *int32
	ShortInfo      *ShortEventInfo
	ExtInfo        *ExtendedEventInfo
	ContentInfo    *ContentInfo
	ComponentInfo  *ComponentInfo
	AudioInfo      *AudioComponentInfo
	EventGroupInfo *EventGroupInfo
	EventRelayInfo *EventGroupInfo
	FreeCAFlag byte
}

func readEventInfo(r *reader, limit int) (EventInfo, error) {
	var v EventInfo
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
	if v.EID, err = r.readUint16(end); err != nil {
		return v, err
	}

	startFlag, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	st, err := r.readSystemTime(end)
	if err != nil {
		return v, err
	}
	if startFlag != 0 {
		v.StartTime = &st
	}

	durFlag, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	dur, err := r.readInt32(end)
	if err != nil {
		return v, err
	}
	if durFlag != 0 {
		v.DurationSec = &dur
	}

	if v.ShortInfo, err = readOptional(r, end, readShortEventInfo); err != nil {
		return v, err
	}
	if v.ExtInfo, err = readOptional(r, end, readExtendedEventInfo); err != nil {
		return v, err
	}
	if v.ContentInfo, err = readOptional(r, end, readContentInfo); err != nil {
		return v, err
	}
	if v.ComponentInfo, err = readOptional(r, end, readComponentInfo); err != nil {
		return v, err
	}
	if v.AudioInfo, err = readOptional(r, end, readAudioComponentInfo); err != nil {
		return v, err
	}
	if v.EventGroupInfo, err = readOptional(r, end, readEventGroupInfo); err != nil {
		return v, err
	}
	if v.EventRelayInfo, err = readOptional(r, end, readEventGroupInfo); err != nil {
		return v, err
	}

	if v.FreeCAFlag, err = r.readByte(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

// readOptional implements the §4.1 sentinel rule: a 4-byte peek of exactly
// 4 (the struct-intro of an empty struct) means the sub-record is absent.
func readOptional[T any](r *reader, limit int, decode func(*reader, int) (T, error)) (*T, error) {
	n, err := r.peekInt32(limit)
	if err != nil {
		return nil, err
	}
	if n == 4 {
		r.pos += 4
		return nil, nil
	}
	v, err := decode(r, limit)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeEventInfo(w *writer, v EventInfo) {
	w.writeStruct(func(w *writer) {
		w.writeUint16(v.ONID)
		w.writeUint16(v.TSID)
		w.writeUint16(v.SID)
		w.writeUint16(v.EID)

		w.writeByte(boolToFlag(v.StartTime != nil))
		if v.StartTime != nil {
			w.writeSystemTime(*v.StartTime)
		} else {
			w.writeSystemTime(Epoch)
		}

		w.writeByte(boolToFlag(v.DurationSec != nil))
		if v.DurationSec != nil {
			w.writeInt32(*v.DurationSec)
		} else {
			w.writeInt32(0)
		}

		writeOptional(w, v.ShortInfo, writeShortEventInfo)
		writeOptional(w, v.ExtInfo, writeExtendedEventInfo)
		writeOptional(w, v.ContentInfo, writeContentInfo)
		writeOptional(w, v.ComponentInfo, writeComponentInfo)
		writeOptional(w, v.AudioInfo, writeAudioComponentInfo)
		writeOptional(w, v.EventGroupInfo, writeEventGroupInfo)
		writeOptional(w, v.EventRelayInfo, writeEventGroupInfo)

		w.writeByte(v.FreeCAFlag)
	})
}

func writeOptional[T any](w *writer, v *T, encode func(*writer, T)) {
	if v == nil {
		w.writeInt32(4) // absent sentinel: an empty struct's own size header
		return
	}
	encode(w, *v)
}

func boolToFlag(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// ShortEventInfo is an event's title and short summary.
type ShortEventInfo struct {
	EventName string
	TextChar  string
}

func readShortEventInfo(r *reader, limit int) (ShortEventInfo, error) {
	var v ShortEventInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.EventName, err = r.readString(end); err != nil {
		return v, err
	}
	if v.TextChar, err = r.readString(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeShortEventInfo(w *writer, v ShortEventInfo) {
	w.writeStruct(func(w *writer) {
		w.writeString(v.EventName)
		w.writeString(v.TextChar)
	})
}

// ExtendedEventInfo is an event's full (long) description text, typically
// split into sections by textutil.ParseProgramExtendedText.
type ExtendedEventInfo struct {
	TextChar string
}

func readExtendedEventInfo(r *reader, limit int) (ExtendedEventInfo, error) {
	var v ExtendedEventInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.TextChar, err = r.readString(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeExtendedEventInfo(w *writer, v ExtendedEventInfo) {
	w.writeStruct(func(w *writer) {
		w.writeString(v.TextChar)
	})
}

// ContentData is a single genre classification. ContentNibble and
// UserNibble are stored in their logical (non-byte-swapped) form; the wire
// form byte-swaps each 16-bit field.
type ContentData struct {
	ContentNibble uint16
	UserNibble    uint16
}

func readContentData(r *reader, limit int) (ContentData, error) {
	var v ContentData
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	cn, err := r.readUint16(end)
	if err != nil {
		return v, err
	}
	un, err := r.readUint16(end)
	if err != nil {
		return v, err
	}
	v.ContentNibble = swap16(cn)
	v.UserNibble = swap16(un)
	r.pos = end
	return v, nil
}

func writeContentData(w *writer, v ContentData) {
	w.writeStruct(func(w *writer) {
		w.writeUint16(swap16(v.ContentNibble))
		w.writeUint16(swap16(v.UserNibble))
	})
}

func swap16(v uint16) uint16 {
	return (v >> 8) | (v << 8)
}

// ContentInfo is the genre/nibble list for an event.
type ContentInfo struct {
	NibbleList []ContentData
}

func readContentInfo(r *reader, limit int) (ContentInfo, error) {
	var v ContentInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.NibbleList, err = readVector(r, end, readContentData); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeContentInfo(w *writer, v ContentInfo) {
	w.writeStruct(func(w *writer) {
		writeVector(w, v.NibbleList, writeContentData)
	})
}

// ComponentInfo describes the primary video/stream component.
type ComponentInfo struct {
	StreamContent byte
	ComponentType byte
	ComponentTag  byte
	TextChar      string
}

func readComponentInfo(r *reader, limit int) (ComponentInfo, error) {
	var v ComponentInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.StreamContent, err = r.readByte(end); err != nil {
		return v, err
	}
	if v.ComponentType, err = r.readByte(end); err != nil {
		return v, err
	}
	if v.ComponentTag, err = r.readByte(end); err != nil {
		return v, err
	}
	if v.TextChar, err = r.readString(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeComponentInfo(w *writer, v ComponentInfo) {
	w.writeStruct(func(w *writer) {
		w.writeByte(v.StreamContent)
		w.writeByte(v.ComponentType)
		w.writeByte(v.ComponentTag)
		w.writeString(v.TextChar)
	})
}

// AudioComponentInfoData is a single audio stream component.
type AudioComponentInfoData struct {
	StreamContent      byte
	ComponentType      byte
	ComponentTag       byte
	StreamType         byte
	SimulcastGroupTag  byte
	ESMultiLingualFlag byte
	MainComponentFlag  byte
	QualityIndicator   byte
	SamplingRate       byte
	TextChar           string
}

func readAudioComponentInfoData(r *reader, limit int) (AudioComponentInfoData, error) {
	var v AudioComponentInfoData
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	fields := []*byte{
		&v.StreamContent, &v.ComponentType, &v.ComponentTag, &v.StreamType,
		&v.SimulcastGroupTag, &v.ESMultiLingualFlag, &v.MainComponentFlag,
		&v.QualityIndicator, &v.SamplingRate,
	}
	for _, f := range fields {
		if *f, err = r.readByte(end); err != nil {
			return v, err
		}
	}
	if v.TextChar, err = r.readString(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeAudioComponentInfoData(w *writer, v AudioComponentInfoData) {
	w.writeStruct(func(w *writer) {
		w.writeByte(v.StreamContent)
		w.writeByte(v.ComponentType)
		w.writeByte(v.ComponentTag)
		w.writeByte(v.StreamType)
		w.writeByte(v.SimulcastGroupTag)
		w.writeByte(v.ESMultiLingualFlag)
		w.writeByte(v.MainComponentFlag)
		w.writeByte(v.QualityIndicator)
		w.writeByte(v.SamplingRate)
		w.writeString(v.TextChar)
	})
}

// AudioComponentInfo is the list of audio stream components for an event.
type AudioComponentInfo struct {
	ComponentList []AudioComponentInfoData
}

func readAudioComponentInfo(r *reader, limit int) (AudioComponentInfo, error) {
	var v AudioComponentInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.ComponentList, err = readVector(r, end, readAudioComponentInfoData); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeAudioComponentInfo(w *writer, v AudioComponentInfo) {
	w.writeStruct(func(w *writer) {
		writeVector(w, v.ComponentList, writeAudioComponentInfoData)
	})
}

// EventData is a bare service/event identifier pair, used inside
// EventGroupInfo (event relay and group/series membership).
type EventData struct {
	ONID uint16
	TSID uint16
	SID  uint16
	EID  uint16
}

func readEventData(r *reader, limit int) (EventData, error) {
	var v EventData
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
	if v.EID, err = r.readUint16(end); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeEventData(w *writer, v EventData) {
	w.writeStruct(func(w *writer) {
		w.writeUint16(v.ONID)
		w.writeUint16(v.TSID)
		w.writeUint16(v.SID)
		w.writeUint16(v.EID)
	})
}

// EventGroupInfo groups related events (series membership, event relay).
type EventGroupInfo struct {
	GroupType    byte
	EventDataList []EventData
}

func readEventGroupInfo(r *reader, limit int) (EventGroupInfo, error) {
	var v EventGroupInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	if v.GroupType, err = r.readByte(end); err != nil {
		return v, err
	}
	if v.EventDataList, err = readVector(r, end, readEventData); err != nil {
		return v, err
	}
	r.pos = end
	return v, nil
}

func writeEventGroupInfo(w *writer, v EventGroupInfo) {
	w.writeStruct(func(w *writer) {
		w.writeByte(v.GroupType)
		writeVector(w, v.EventDataList, writeEventData)
	})
}
