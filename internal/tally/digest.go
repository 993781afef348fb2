package tally

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// DomainTally separates tally digests from any other SHA-256 use.
// The version suffix allows the encoding to change later.
const DomainTally = "wordtally/tally/v1"

// MarshalCanonical encodes entries as a canonical JSON array of
// [word, count] pairs.
//
// Entries are written in the order given; use Tally.Entries for byte order.
// HTML characters are not escaped, so the same entries always produce the
// same bytes.
func MarshalCanonical(entries []Entry) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('[')
		buf.Write(marshalCanonicalString(e.Word))
		buf.WriteByte(',')
		buf.WriteString(strconv.FormatUint(e.Count, 10))
		buf.WriteByte(']')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// Digest returns the hex SHA-256 of the tally's canonical encoding.
// Equal tallies produce equal digests regardless of insertion order.
func (t *Tally) Digest() string {
	return hashWithDomain(DomainTally, MarshalCanonical(t.Entries()))
}

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func marshalCanonicalString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string into a bytes.Buffer cannot fail.
	_ = enc.Encode(s)
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
}
