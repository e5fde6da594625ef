package msm

// Constellation identifies a GNSS constellation.
type Constellation int

const (
	UnknownConstellation Constellation = iota
	GPS
	GLONASS
	Galileo
	SBAS
	QZSS
	BeiDou
	NavIC
)

var constellationNames = []string{
	"Unknown", "GPS", "GLONASS", "Galileo", "SBAS", "QZSS", "BeiDou", "NavIC/IRNSS",
}

// RINEX satellite system identifiers.
var constellationLetters = []byte{'?', 'G', 'R', 'E', 'S', 'J', 'C', 'I'}

// String returns the name of the constellation.
func (c Constellation) String() string {
	if c < 0 || int(c) >= len(constellationNames) {
		return constellationNames[0]
	}
	return constellationNames[c]
}

// Letter returns the RINEX satellite system identifier - 'G' for GPS,
// 'E' for Galileo, 'C' for BeiDou and so on.
func (c Constellation) Letter() byte {
	if c < 0 || int(c) >= len(constellationLetters) {
		return constellationLetters[0]
	}
	return constellationLetters[c]
}

// Reconstructable is true if observables can be produced for the
// constellation.
func (c Constellation) Reconstructable() bool {
	return c == GPS || c == Galileo || c == BeiDou
}

// ConstellationForMessageType returns the constellation of an MSM message
// type, UnknownConstellation if it isn't one.
func ConstellationForMessageType(messageType int) Constellation {
	if !IsMSM(messageType) {
		return UnknownConstellation
	}
	return Constellation((messageType-1071)/10 + 1)
}
