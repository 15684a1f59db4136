package harvardart

// Person is one contributor entry on a raw object record.
type Person struct {
	Name string `json:"name" parquet:"name"`
}

// ObjectRecord is one raw entry from the catalog's object search endpoint.
// Fields mirror the API's JSON; parquet tags let dataset snapshots round-trip
// the same struct.
type ObjectRecord struct {
	Title           string   `json:"title" parquet:"title"`
	People          []Person `json:"people" parquet:"people"`
	Culture         string   `json:"culture" parquet:"culture"`
	Century         string   `json:"century" parquet:"century"`
	Dated           string   `json:"dated" parquet:"dated"`
	Medium          string   `json:"medium" parquet:"medium"`
	PrimaryImageURL string   `json:"primaryimageurl" parquet:"primaryimageurl"`
}

// searchResponse is the envelope the object search endpoint returns.
type searchResponse struct {
	Records []ObjectRecord `json:"records"`
}
