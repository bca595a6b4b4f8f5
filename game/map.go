package game

// Terrain classifies a space for movement and operation rules.
type Terrain int

const (
	City Terrain = iota
	Mountain
	Plains
)

// Space holds the static data of one map space. Dynamic state (pieces,
// support, markers) lives in GameState.
type Space struct {
	ID          int
	Name        string
	Population  int
	Terrain     Terrain
	Wilaya      int  // region id; 0 for country spaces outside the map proper
	Country     bool // neighbouring country rather than an in-map space
	AdjacentIDs []int
}

// Map represents the game map, containing all the spaces grouped into wilayas.
type Map struct {
	Spaces  []*Space
	Wilayas map[int][]int // wilaya id -> space ids
}

func NewMap() *Map {
	return &Map{Wilayas: make(map[int][]int)}
}

func (m *Map) AddSpace(s *Space) {
	m.Spaces = append(m.Spaces, s)
	m.Wilayas[s.Wilaya] = append(m.Wilayas[s.Wilaya], s.ID)
}

// AddBorder adds a bidirectional adjacency between two spaces.
func (m *Map) AddBorder(id1, id2 int) {
	if !contains(m.Spaces[id1].AdjacentIDs, id2) {
		m.Spaces[id1].AdjacentIDs = append(m.Spaces[id1].AdjacentIDs, id2)
	}
	if !contains(m.Spaces[id2].AdjacentIDs, id1) {
		m.Spaces[id2].AdjacentIDs = append(m.Spaces[id2].AdjacentIDs, id1)
	}
}

func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// Space ids, fixed by the scenario data below.
const (
	Oran = iota
	Tlemcen
	Mascara
	Saida
	Algiers
	Medea
	Orleansville
	Aumale
	Constantine
	Setif
	Batna
	SoukAhras
	Morocco
	Tunisia
)

var spaceData = []struct {
	name       string
	population int
	terrain    Terrain
	wilaya     int
}{
	{"Oran", 2, City, 1},
	{"Tlemcen", 1, Mountain, 1},
	{"Mascara", 1, Plains, 1},
	{"Saida", 0, Mountain, 1},
	{"Algiers", 3, City, 2},
	{"Medea", 1, Mountain, 2},
	{"Orleansville", 2, Plains, 2},
	{"Aumale", 1, Plains, 2},
	{"Constantine", 2, City, 3},
	{"Setif", 1, Mountain, 3},
	{"Batna", 0, Mountain, 3},
	{"Souk Ahras", 1, Plains, 3},
	{"Morocco", 1, Plains, 0},
	{"Tunisia", 1, Plains, 0},
}

var adjacencyData = map[int][]int{
	Oran:         {Tlemcen, Mascara},
	Tlemcen:      {Saida, Morocco},
	Mascara:      {Saida, Orleansville},
	Saida:        {Morocco},
	Algiers:      {Medea, Orleansville},
	Medea:        {Aumale, Orleansville},
	Aumale:       {Setif},
	Constantine:  {Setif, SoukAhras},
	Setif:        {Batna},
	Batna:        {SoukAhras, Tunisia},
	SoukAhras:    {Tunisia},
}

// CreateMap builds the scenario map: three wilayas of four spaces each plus
// two neighbouring countries.
func CreateMap() *Map {
	m := NewMap()

	for id, data := range spaceData {
		m.AddSpace(&Space{
			ID:         id,
			Name:       data.name,
			Population: data.population,
			Terrain:    data.terrain,
			Wilaya:     data.wilaya,
			Country:    data.wilaya == 0,
		})
	}

	// Walk ids in order so adjacency lists come out the same every run.
	for id := range spaceData {
		for _, n := range adjacencyData[id] {
			m.AddBorder(id, n)
		}
	}

	return m
}
