package model

// ResultType classifies how a match was decided.
type ResultType int

const (
	ResultUnknown ResultType = 0
	FullTime      ResultType = 1
	ExtraTime     ResultType = 2
	Shootout      ResultType = 3
)

func (r ResultType) String() string {
	switch r {
	case FullTime:
		return "full time"
	case ExtraTime:
		return "extra time"
	case Shootout:
		return "penalty shootout"
	default:
		return "?"
	}
}

// Play periods as stored on events. 1-2 are regulation halves, 3-4 are
// extra-time halves, 5 is the penalty shootout.
const (
	LastRegulationPeriod = 2
	LastExtraTimePeriod  = 4
	ShootoutPeriod       = 5
)

// ---- Records loaded from the data store ----

// Competition is one competition edition (competition + season pair).
type Competition struct {
	CompetitionID int
	SeasonID      int
	Name          string
	Gender        string
	SeasonName    string
}

// Team is a side of a match. Teams carry no stable identifier in the source
// data; Key combines name and country so two same-named teams from different
// countries never collapse into one.
type Team struct {
	Name    string
	Country string
}

// Key returns the stable composite identity used for grouping.
func (t Team) Key() string {
	return t.Name + "/" + t.Country
}

// Match is one match record with its stored regulation score. The stored
// score already includes extra-time goals where played; shootout kicks are
// never part of it.
type Match struct {
	ID          int
	Competition string
	SeasonName  string
	HomeTeam    Team
	AwayTeam    Team
	HomeScore   int
	AwayScore   int
}

// Player is an event-side player reference.
type Player struct {
	ID   int
	Name string
}

// Event is one timestamped in-game event. Only shot events carry an outcome
// and a scoring player; for everything else those fields are zero.
type Event struct {
	Period      int
	Minute      int
	Type        string
	TeamName    string
	Player      Player
	ShotOutcome string
}

// LineupEntry maps a player id to display-name data for one team in one match.
type LineupEntry struct {
	PlayerID int
	Name     string
	Nickname string // empty when the source has none
}

// TeamLineup is one team's roster for one match.
type TeamLineup struct {
	TeamName string
	Players  []LineupEntry
}

// ---- Derived values ----

// Goal is one scoring event from periods 1-4 with the scorer attached.
// Nickname is filled in by nickname resolution; until then it is empty.
type Goal struct {
	Period   int
	Minute   int
	TeamName string
	Player   Player
	Nickname string
}

// Winner is the resolved outcome side. Draw is only a valid outcome for
// non-knockout play; in a knockout context callers treat it as bad data.
type Winner struct {
	Draw bool
	Team Team // zero value when Draw
}

// Resolved couples a match with the facts derived from its event sequence.
// It is produced once per match and read-only afterwards.
type Resolved struct {
	Match         Match
	Result        ResultType
	Goals         []Goal
	HomePenalties int
	AwayPenalties int
	Winner        Winner
}

// ---- Aggregate report rows ----

// CountryCount is one row of the participation-by-country report.
type CountryCount struct {
	Country string
	Count   int
}

// TeamWins is one team's win tally within a country group.
type TeamWins struct {
	Team string
	Wins int
}

// CountryWins is one country group of the wins report, teams ordered by
// descending win count.
type CountryWins struct {
	Country string
	Wins    int
	Teams   []TeamWins
}

// ScorerCount is one row of the top-scorer report.
type ScorerCount struct {
	Nickname string
	Goals    int
}
