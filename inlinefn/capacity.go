package inlinefn

// Capacity is the closed set of slot sizes a container can be declared
// with. Slots are word arrays rather than byte arrays so that anything
// placed into one is aligned to 8 bytes, Go's maximum alignment.
type Capacity interface {
	~[1]uint64 | ~[2]uint64 | ~[4]uint64 | ~[8]uint64 | ~[16]uint64 |
		~[32]uint64 | ~[64]uint64 | ~[128]uint64 | ~[256]uint64
}

// Named capacities. The suffix is the slot size in bytes.
type (
	Cap8    [1]uint64
	Cap16   [2]uint64
	Cap32   [4]uint64
	Cap64   [8]uint64
	Cap128  [16]uint64
	Cap256  [32]uint64
	Cap512  [64]uint64
	Cap1024 [128]uint64
	Cap2048 [256]uint64
)

// CapDefault comfortably holds a handful of captured words.
type CapDefault = Cap128
