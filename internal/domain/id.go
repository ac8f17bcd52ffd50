package domain

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/rs/xid"
)

// itemIDLen is the size of an ItemID in bytes. The hex form is twice as long.
const itemIDLen = 12

// ItemID is the opaque identifier of a todo item. It is a 12-byte,
// time-ordered value rendered as a 24 character hex string, the same layout
// the document store uses for its object ids.
type ItemID [itemIDLen]byte

// NilItemID is the zero ItemID.
var NilItemID ItemID

// NewItemID generates a new ItemID.
func NewItemID() ItemID {
	var id ItemID
	copy(id[:], xid.New().Bytes())
	return id
}

// ParseItemID parses the hex form of an ItemID.
func ParseItemID(raw string) (ItemID, error) {
	var id ItemID
	if len(raw) != itemIDLen*2 {
		return NilItemID, fmt.Errorf("item id %q: want %d hex characters, got %d", raw, itemIDLen*2, len(raw))
	}
	if _, err := hex.Decode(id[:], []byte(raw)); err != nil {
		return NilItemID, fmt.Errorf("item id %q: %w", raw, err)
	}
	return id, nil
}

// IsValidItemID reports whether raw is a well-formed ItemID.
func IsValidItemID(raw string) bool {
	_, err := ParseItemID(raw)
	return err == nil
}

// String returns the hex form of the id.
func (id ItemID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the id is unset.
func (id ItemID) IsZero() bool {
	return id == NilItemID
}

// MarshalJSON func
func (id ItemID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON func
func (id *ItemID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseItemID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer so the id is stored as char(24).
func (id ItemID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner.
func (id *ItemID) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*id = NilItemID
		return nil
	default:
		return fmt.Errorf("item id: cannot scan %T", src)
	}
	parsed, err := ParseItemID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
