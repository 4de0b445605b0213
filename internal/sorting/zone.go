package sorting

// Zone is one of the three containers an item can occupy.
type Zone string

const (
	ZoneUnsorted Zone = "unsorted"
	ZoneGroupA   Zone = "groupA"
	ZoneGroupB   Zone = "groupB"
)

// Zones lists the valid zones in display order.
var Zones = []Zone{ZoneGroupA, ZoneGroupB, ZoneUnsorted}

// ParseZone maps a drop-target id to a Zone. "sortZone" is accepted as an
// alias for the unsorted pool.
func ParseZone(s string) (Zone, bool) {
	switch s {
	case string(ZoneUnsorted), "sortZone":
		return ZoneUnsorted, true
	case string(ZoneGroupA):
		return ZoneGroupA, true
	case string(ZoneGroupB):
		return ZoneGroupB, true
	}
	return "", false
}

// Valid reports whether z is one of the three known zones.
func (z Zone) Valid() bool {
	return z == ZoneUnsorted || z.IsGroup()
}

// IsGroup reports whether z is a classification zone (A or B).
func (z Zone) IsGroup() bool {
	return z == ZoneGroupA || z == ZoneGroupB
}

// Group returns the group a classification zone stands for.
func (z Zone) Group() (Group, bool) {
	switch z {
	case ZoneGroupA:
		return GroupA, true
	case ZoneGroupB:
		return GroupB, true
	}
	return "", false
}

// Membership is a snapshot of the three zone sequences.
type Membership struct {
	Unsorted []string
	GroupA   []string
	GroupB   []string
}

// In returns the ids held by zone z.
func (m Membership) In(z Zone) []string {
	switch z {
	case ZoneGroupA:
		return m.GroupA
	case ZoneGroupB:
		return m.GroupB
	case ZoneUnsorted:
		return m.Unsorted
	}
	return nil
}
