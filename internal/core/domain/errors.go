package domain

import "go.trai.ch/zerr"

var (
	// ErrBadArgument is returned when a CLI value is bad or missing: an unknown
	// report name, malformed predicate syntax, or an unresolvable --local value.
	ErrBadArgument = zerr.New("bad argument")

	// ErrEnvironment is returned when a required environment variable is missing
	// or names something that does not exist.
	ErrEnvironment = zerr.New("environment error")

	// ErrSourceInput is returned when reading or parsing the source file fails.
	ErrSourceInput = zerr.New("source input error")

	// ErrPlaceNotFound is returned when a place lookup matches nothing.
	ErrPlaceNotFound = zerr.New("place not found")

	// ErrAmbiguousName is returned when a textual lookup matches more than one node.
	ErrAmbiguousName = zerr.New("ambiguous name")

	// ErrNoSuchKeyword is returned when a predicate references an unknown keyword.
	ErrNoSuchKeyword = zerr.New("no such keyword")

	// ErrNoSuchOrganisation is returned when an organisation lookup matches nothing.
	ErrNoSuchOrganisation = zerr.New("no such organisation")

	// ErrUnknownReport is returned when the requested report name is not registered.
	ErrUnknownReport = zerr.New("unknown report")

	// ErrDuplicateCountry is returned when a country definition repeats an ISO
	// code or calling code already in the world.
	ErrDuplicateCountry = zerr.New("duplicate country")

	// ErrDuplicateArea is returned when an area definition repeats a name or
	// area code within its country.
	ErrDuplicateArea = zerr.New("duplicate area")

	// ErrSnapshotInvalid is returned when a decoded snapshot fails internal
	// consistency checks. The cache treats it as a miss.
	ErrSnapshotInvalid = zerr.New("invalid model snapshot")
)
