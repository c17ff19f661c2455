package jurisdiction

// courtTable maps a lowercase jurisdiction code to the CourtListener court
// identifiers it covers, in declared order. State entries list the court of
// last resort first, then intermediate appellate courts.
var courtTable = map[string][]string{
	"al":      {"ala", "alactapp"},
	"ak":      {"alaska", "alaskactapp"},
	"az":      {"ariz", "arizctapp"},
	"ar":      {"ark", "arkctapp"},
	"ca":      {"calctapp", "cal"},
	"co":      {"colo", "coloctapp"},
	"ct":      {"conn", "connappct"},
	"de":      {"del", "delch", "delsuperct"},
	"dc":      {"dc", "dcctapp"},
	"fl":      {"fla", "fladistctapp"},
	"ga":      {"ga", "gactapp"},
	"hi":      {"haw", "hawapp"},
	"id":      {"idaho", "idahoctapp"},
	"il":      {"ill", "illappct"},
	"in":      {"ind", "indctapp"},
	"ia":      {"iowa", "iowactapp"},
	"ks":      {"kan", "kanctapp"},
	"ky":      {"ky", "kyctapp"},
	"la":      {"la", "lactapp"},
	"me":      {"me"},
	"md":      {"md", "mdctspecapp"},
	"ma":      {"mass", "massappct"},
	"mi":      {"mich", "michctapp"},
	"mn":      {"minn", "minnctapp"},
	"ms":      {"miss", "missctapp"},
	"mo":      {"mo", "moctapp"},
	"mt":      {"mont"},
	"ne":      {"neb", "nebctapp"},
	"nv":      {"nev", "nevapp"},
	"nh":      {"nh"},
	"nj":      {"nj", "njsuperctappdiv"},
	"nm":      {"nm", "nmctapp"},
	"ny":      {"ny", "nyappdiv", "nysupct"},
	"nc":      {"nc", "ncctapp"},
	"nd":      {"nd", "ndctapp"},
	"oh":      {"ohio", "ohioctapp"},
	"ok":      {"okla", "oklacivapp", "oklacrimapp"},
	"or":      {"or", "orctapp"},
	"pa":      {"pa", "pasuperct"},
	"ri":      {"ri"},
	"sc":      {"sc", "scctapp"},
	"sd":      {"sd"},
	"tn":      {"tenn", "tennctapp"},
	"tx":      {"tex", "texcrimapp", "texapp"},
	"ut":      {"utah", "utahctapp"},
	"vt":      {"vt"},
	"va":      {"va", "vactapp"},
	"wa":      {"wash", "washctapp"},
	"wv":      {"wva"},
	"wi":      {"wis", "wisctapp"},
	"wy":      {"wyo"},
	"scotus":  {"scotus"},
	"federal": {"ca1", "ca2", "ca3", "ca4", "ca5", "ca6", "ca7", "ca8", "ca9", "ca10", "ca11", "cadc", "cafc"},
}

// Codes returns every known jurisdiction code with its court identifiers.
// The returned map is a copy; callers may not mutate the table.
func Codes() map[string][]string {
	out := make(map[string][]string, len(courtTable))
	for code, courts := range courtTable {
		out[code] = append([]string(nil), courts...)
	}
	return out
}
