package stations

// builtinRecords is a small curated table of major French stations.
// It exists for demos, tests and the -builtin CLI flag; a failed load of
// the real source file stays fatal and is never silently replaced by it.
var builtinRecords = []Record{
	{ID: "4916", Name: "Paris", Latitude: 48.8567, Longitude: 2.3522, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "4924", Name: "Paris Gare de Lyon", Latitude: 48.8443, Longitude: 2.3744, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "4916"},
	{ID: "4920", Name: "Paris Montparnasse", Latitude: 48.8409, Longitude: 2.3188, HasCoordinates: true, Country: "FR", ParentStationID: "4916"},
	{ID: "4918", Name: "Paris Gare du Nord", Latitude: 48.8809, Longitude: 2.3553, HasCoordinates: true, Country: "FR", ParentStationID: "4916"},
	{ID: "1354", Name: "Lyon", Latitude: 45.7640, Longitude: 4.8357, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "1362", Name: "Lyon Part-Dieu", Latitude: 45.7606, Longitude: 4.8595, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "1354"},
	{ID: "1360", Name: "Lyon Perrache", Latitude: 45.7485, Longitude: 4.8260, HasCoordinates: true, Country: "FR", ParentStationID: "1354"},
	{ID: "2476", Name: "Marseille", Latitude: 43.2965, Longitude: 5.3698, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "2478", Name: "Marseille Saint-Charles", Latitude: 43.3027, Longitude: 5.3806, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "2476"},
	{ID: "0622", Name: "Bordeaux", Latitude: 44.8378, Longitude: -0.5792, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "0624", Name: "Bordeaux Saint-Jean", Latitude: 44.8256, Longitude: -0.5565, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "0622"},
	{ID: "2090", Name: "Lille", Latitude: 50.6292, Longitude: 3.0573, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "2092", Name: "Lille Flandres", Latitude: 50.6367, Longitude: 3.0706, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "2090"},
	{ID: "6080", Name: "Strasbourg", Latitude: 48.5734, Longitude: 7.7521, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "6082", Name: "Strasbourg Gare Centrale", Latitude: 48.5850, Longitude: 7.7348, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "6080"},
	{ID: "3404", Name: "Nantes", Latitude: 47.2184, Longitude: -1.5536, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "3406", Name: "Nantes Gare", Latitude: 47.2172, Longitude: -1.5426, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "3404"},
	{ID: "6484", Name: "Toulouse", Latitude: 43.6047, Longitude: 1.4442, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "6486", Name: "Toulouse Matabiau", Latitude: 43.6111, Longitude: 1.4537, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "6484"},
	{ID: "5378", Name: "Rennes", Latitude: 48.1173, Longitude: -1.6778, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "5380", Name: "Rennes Gare", Latitude: 48.1034, Longitude: -1.6723, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "5378"},
	{ID: "3043", Name: "Montpellier", Latitude: 43.6108, Longitude: 3.8767, HasCoordinates: true, Country: "FR", IsCity: true},
	{ID: "3045", Name: "Montpellier Saint-Roch", Latitude: 43.6045, Longitude: 3.8807, HasCoordinates: true, Country: "FR", IsMainStation: true, ParentStationID: "3043"},
}

// Builtin returns an index over the curated major-station table.
func Builtin(norm func(string) string) *Index {
	recs := make([]Record, len(builtinRecords))
	copy(recs, builtinRecords)
	return NewIndex(recs, norm)
}
