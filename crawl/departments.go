// Package crawl drives the parsing pipeline across the registrar's
// department/suffix address space and aggregates the results.
package crawl

// DepartmentCodes lists every department and program code with a catalog
// listing page.
var DepartmentCodes = []string{
	"1", "2", "3", "4",
	"5", "6", "7", "8",
	"9", "10", "11", "12",
	"14", "15", "16", "17",
	"18", "20", "21", "21A",
	"21W", "CMS", "21G", "21H",
	"21L", "21M", "WGS", "22",
	"24", "CC", "CSB", "EC",
	"EM", "ES", "HST", "IDS",
	"MAS", "SCM",
	"AS", "MS", "NS",
	"STS", "SWE", "SP",
}

// Each department's listings are spread over suffix pages m<code>a.html,
// m<code>b.html, ... on the registrar site.
const (
	pageSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz"
	pagePrefix         = "m"
	pageExtension      = ".html"
)

// pageName returns the file name of one department suffix page.
func pageName(code string) string {
	return pagePrefix + code + pageExtension
}
