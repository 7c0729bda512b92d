package compliance

import (
	"bytes"
	"encoding/json"
)

// AttachFile writes an uploaded document's URL into the structured checklist
// under key, flagging the entry submitted. The entry is appended when the key
// is new; key order is preserved otherwise. Works on empty checklists, so an
// upload can start a structured record.
func AttachFile(raw json.RawMessage, key, url string) json.RawMessage {
	kvs := decodeOrdered(raw)

	found := false
	for i, kv := range kvs {
		if kv.key != key {
			continue
		}
		val, isObj := kv.value.(map[string]any)
		if !isObj {
			val = map[string]any{}
		}
		val["fileUrl"] = url
		val["submitted"] = true
		kvs[i].value = val
		found = true
		break
	}
	if !found {
		kvs = append(kvs, orderedKV{key: key, value: map[string]any{"fileUrl": url, "submitted": true}})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range kvs {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(kv.key)
		if err != nil {
			return raw
		}
		vb, err := json.Marshal(kv.value)
		if err != nil {
			return raw
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// MarkAllSubmitted returns a copy of the stored requirements object with
// every required entry flagged submitted, preserving the document's key
// order. ok is false when the record has no structured checklist to update
// (legacy-shaped records keep their submission state in the file columns).
func MarkAllSubmitted(raw json.RawMessage) (updated json.RawMessage, ok bool) {
	kvs := decodeOrdered(raw)
	if len(kvs) == 0 {
		return nil, false
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range kvs {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(kv.key)
		if err != nil {
			return nil, false
		}
		buf.Write(kb)
		buf.WriteByte(':')

		val, isObj := kv.value.(map[string]any)
		if !isObj {
			val = map[string]any{}
		}
		required := true
		if b, isBool := val["required"].(bool); isBool && !b {
			required = false
		}
		if required {
			val["submitted"] = true
		}

		vb, err := json.Marshal(val)
		if err != nil {
			return nil, false
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), true
}
