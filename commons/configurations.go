package commons

import "time"

// TIME_FORMAT defines how timestamps are serialized and deserialized across
// config, CLI fixtures and logs.
const TIME_FORMAT = time.RFC3339

// TIME_PRECISION is the resolution every timestamp in the core is rounded to.
// spec.md fixes this at one minute.
const TIME_PRECISION = time.Minute
