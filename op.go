package memtag

// Op identifies an engine operation in errors, logs, and metrics.
type Op uint8

const (
	OpStoreTag Op = iota
	OpStoreTagPair
	OpStoreTagZero
	OpStoreTagPairZero
	OpStoreTagZeroCombined
	OpZeroTag
	OpZeroTagPair
	OpStoreZeroOnly
	OpStoreTagPrefetch
	OpRandomize
	OpLoadTags
	OpMigrateDiscard
	OpMigratePreserving
)

// String returns the instruction-style name of an Op.
func (o Op) String() string {
	switch o {
	case OpStoreTag:
		return "stg"
	case OpStoreTagPair:
		return "st2g"
	case OpStoreTagZero:
		return "stg+memset"
	case OpStoreTagPairZero:
		return "st2g+memset"
	case OpStoreTagZeroCombined:
		return "stgp"
	case OpZeroTag:
		return "stzg"
	case OpZeroTagPair:
		return "stz2g"
	case OpStoreZeroOnly:
		return "memset"
	case OpStoreTagPrefetch:
		return "stg+dc-gzva"
	case OpRandomize:
		return "irg+addg"
	case OpLoadTags:
		return "ldg"
	case OpMigrateDiscard:
		return "migrate-discard"
	case OpMigratePreserving:
		return "migrate-preserving"
	default:
		return "unknown"
	}
}
