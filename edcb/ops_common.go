package edcb

func writeInt32Vector(w *writer, ids []int32) {
	writeVector(w, ids, func(w *writer, v int32) { w.writeInt32(v) })
}

func readInt32Vector(r *reader, limit int) ([]int32, error) {
	return readVector(r, limit, func(r *reader, limit int) (int32, error) {
		return r.readInt32(limit)
	})
}

func writeStringVector(w *writer, ss []string) {
	writeVector(w, ss, func(w *writer, s string) { w.writeString(s) })
}

func readStringVector(r *reader, limit int) ([]string, error) {
	return readVector(r, limit, func(r *reader, limit int) (string, error) {
		return r.readString(limit)
	})
}
