package cache

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint summarizes a document for use in cache keys. It combines the
// declared version, info.title, info.version, and the number of paths with a
// hash of the document's canonical JSON encoding, so documents that share the
// summary fields but differ in content do not collide.
func Fingerprint(doc map[string]any) string {
	version := stringField(doc, "openapi")
	if version == "" {
		version = stringField(doc, "swagger")
	}
	info, _ := doc["info"].(map[string]any)
	paths, _ := doc["paths"].(map[string]any)

	return version + "|" +
		stringField(info, "title") + "|" +
		stringField(info, "version") + "|" +
		strconv.Itoa(len(paths)) + "|" +
		contentHash(doc)
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// contentHash hashes the JSON encoding of doc. encoding/json sorts map keys,
// which makes the encoding canonical for decoded documents. Values JSON cannot
// encode (NaN, map[any]any) fall back to the fmt encoding, which also sorts keys.
func contentHash(doc map[string]any) string {
	data, err := json.Marshal(doc)
	if err != nil {
		data = []byte(fmt.Sprintf("%v", doc))
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
