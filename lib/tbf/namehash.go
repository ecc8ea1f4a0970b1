package tbf

// HashName derives a 16-bit id from a tag name. It is an FNV-1a
// variant over a restricted alphabet: each character is remapped to a
// small integer (a-z and A-Z to 1-26, 0-9 to 27-36, underscore to 37,
// anything else to 0) before being folded into the running hash, then
// the 32-bit FNV-1a result is truncated to its low 16 bits.
//
// This is the same algorithm the original C++ TBF implementation
// uses for its compile-time TagNameHash, so ids computed by this
// function agree with ids baked into buffers written by that
// implementation. The algorithm is not part of the wire contract
// (spec: "any non-cryptographic hash ... is acceptable"); what is
// contractual is that writer and reader agree on one hash function
// for id-based mode, which [MustTag] and [NewTag] guarantee within
// this package by always calling HashName.
//
// Truncating a 32-bit hash to 16 bits can legitimately land on zero,
// which is the reserved "invalid id" sentinel. When that happens,
// HashName sets the high bit instead of returning zero, so every name
// maps to a non-zero id as the format requires.
func HashName(name string) uint16 {
	const (
		fnvOffsetBasis uint32 = 2166136261
		fnvPrime       uint32 = 16777619
	)

	hash := fnvOffsetBasis
	for i := 0; i < len(name); i++ {
		hash ^= uint32(remapTagChar(name[i]))
		hash *= fnvPrime
	}

	id := uint16(hash)
	if id == 0 {
		id = 0x8000
	}
	return id
}

// remapTagChar maps a tag alphabet character to the small integer
// TagNameHash folds into the running hash, or 0 for a character
// outside [A-Za-z0-9_] (which [validTagChar] rejects before a name
// ever reaches HashName, but the mapping is defined for every byte so
// the function is total).
func remapTagChar(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 1
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 1
	case c >= '0' && c <= '9':
		return c - '0' + 27
	case c == '_':
		return 37
	default:
		return 0
	}
}
