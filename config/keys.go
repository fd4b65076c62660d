package config

const (
	delimiter = "."

	Prefix = "config"

	ScanPrefix    = Prefix + delimiter + "scan"
	ScanBlockSize = ScanPrefix + delimiter + "block_size"
	ScanLimit     = ScanPrefix + delimiter + "limit"

	MemoPrefix    = Prefix + delimiter + "memo"
	MemoTableSize = MemoPrefix + delimiter + "table_size"

	RecurrencePrefix = Prefix + delimiter + "recurrence"
	RecurrencePrimed = RecurrencePrefix + delimiter + "primed"

	LogPrefix = Prefix + delimiter + "log"
	LogLevel  = LogPrefix + delimiter + "level"
)

// Keys lists every leaf key in file order.
var Keys = []string{
	ScanBlockSize,
	ScanLimit,
	MemoTableSize,
	RecurrencePrimed,
	LogLevel,
}
