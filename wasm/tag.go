package wasm

// TagDescriptor is one entry of the Tag section: an exception tag's
// attribute byte (currently always 0, reserved for future attribute kinds)
// and the type index describing the values it carries.
type TagDescriptor struct {
	Attribute byte
	TypeIndex Index
}
