package corpus

// LawListItem is one law.go.kr 법령 search hit: enough to identify a law
// and fetch its full text by MST (법령일련번호).
type LawListItem struct {
	MST      string `xml:"법령일련번호"`
	ID       string `xml:"법령ID"`
	Name     string `xml:"법령명한글"`
	LawType  string `xml:"법령구분명"`
	EffectDate string `xml:"시행일자"`
}

// searchResponseXML mirrors lawSearch.do's type=XML envelope.
type searchResponseXML struct {
	TotalCount int           `xml:"totalCnt"`
	Laws       []LawListItem `xml:"law"`
}
