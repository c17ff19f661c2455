package statebar

// Info describes one state bar's public verification surface.
type Info struct {
	Name         string
	URL          string
	Instructions string
	DirectLink   bool
}

// fallback is returned for state codes outside the table.
var fallback = Info{
	Name:         "State Bar",
	URL:          "https://www.americanbar.org/groups/legal_services/flh-home/",
	Instructions: "Visit the American Bar Association to find your state bar",
}

var barTable = map[string]Info{
	"AL": {
		Name:         "Alabama State Bar",
		URL:          "https://www.alabar.org/for-the-public/find-a-lawyer/",
		Instructions: "Enter the attorney's name or bar number in the search field",
	},
	"AK": {
		Name:         "Alaska Bar Association",
		URL:          "https://alaskabar.org/for-the-public/lawyer-directory/",
		Instructions: "Search by attorney name in the directory",
	},
	"AZ": {
		Name:         "State Bar of Arizona",
		URL:          "https://www.azbar.org/for-the-public/find-a-lawyer/",
		Instructions: "Use the lawyer finder tool with name or bar number",
	},
	"AR": {
		Name:         "Arkansas Bar Association",
		URL:          "https://www.arcourts.gov/professional-and-lawyer-regulation/attorney-search",
		Instructions: "Search the attorney database",
	},
	"CA": {
		Name:         "State Bar of California",
		URL:          "https://apps.calbar.ca.gov/attorney/Licensee/Detail/",
		Instructions: "Add the bar number to the end of the URL, or search at calbar.ca.gov",
		DirectLink:   true,
	},
	"CO": {
		Name:         "Colorado Supreme Court",
		URL:          "https://www.coloradosupremecourt.com/Search/AttSearch.asp",
		Instructions: "Enter attorney name or registration number",
	},
	"CT": {
		Name:         "Connecticut Bar",
		URL:          "https://www.jud.ct.gov/attorneyfirminquiry/",
		Instructions: "Search by attorney name or juris number",
	},
	"DE": {
		Name:         "Delaware Courts",
		URL:          "https://courts.delaware.gov/odc/attorneysearch.aspx",
		Instructions: "Search by name or bar ID",
	},
	"DC": {
		Name:         "District of Columbia Bar",
		URL:          "https://www.dcbar.org/for-the-public/find-a-lawyer",
		Instructions: "Use the lawyer directory search",
	},
	"FL": {
		Name:         "The Florida Bar",
		URL:          "https://www.floridabar.org/directories/find-mbr/",
		Instructions: "Search by name or bar number",
	},
	"GA": {
		Name:         "State Bar of Georgia",
		URL:          "https://www.gabar.org/membersearchresults.cfm",
		Instructions: "Enter search criteria to find the attorney",
	},
	"HI": {
		Name:         "Hawaii State Bar Association",
		URL:          "https://hsba.org/HSBA/For_the_Public/HSBA/Public/find-a-lawyer.aspx",
		Instructions: "Search the lawyer directory",
	},
	"ID": {
		Name:         "Idaho State Bar",
		URL:          "https://isb.idaho.gov/licensing/attorney-licensing/attorney-roster/",
		Instructions: "Search the attorney roster",
	},
	"IL": {
		Name:         "Illinois ARDC",
		URL:          "https://www.iardc.org/ldetail.asp",
		Instructions: "Enter the ARDC registration number",
	},
	"IN": {
		Name:         "Indiana Roll of Attorneys",
		URL:          "https://www.in.gov/courts/iocs/admin/radp/",
		Instructions: "Search the Roll of Attorneys database",
	},
	"IA": {
		Name:         "Iowa State Bar Association",
		URL:          "https://www.iowabar.org/page/FindALawyer",
		Instructions: "Use the Find a Lawyer feature",
	},
	"KS": {
		Name:         "Kansas Bar Association",
		URL:          "https://www.ksbar.org/page/findlawyer",
		Instructions: "Search the attorney directory",
	},
	"KY": {
		Name:         "Kentucky Bar Association",
		URL:          "https://www.kybar.org/search/custom.asp?id=2818",
		Instructions: "Search by name or bar number",
	},
	"LA": {
		Name:         "Louisiana State Bar Association",
		URL:          "https://www.lsba.org/Public/FindLegalHelp.aspx",
		Instructions: "Use the lawyer lookup tool",
	},
	"ME": {
		Name:         "Maine Board of Bar Overseers",
		URL:          "https://www.mebaroverseers.org/attorney_registration/searchlawyerinquiry.asp",
		Instructions: "Search the lawyer inquiry database",
	},
	"MD": {
		Name:         "Maryland Courts",
		URL:          "https://www.courts.state.md.us/lawyers/attylist",
		Instructions: "Search the attorney directory",
	},
	"MA": {
		Name:         "Massachusetts Board of Bar Overseers",
		URL:          "https://www.massbbo.org/Lookup",
		Instructions: "Enter attorney name or BBO number",
	},
	"MI": {
		Name:         "State Bar of Michigan",
		URL:          "https://www.zeekbeek.com/SBM",
		Instructions: "Search for attorneys by name",
	},
	"MN": {
		Name:         "Minnesota Lawyer Registration",
		URL:          "https://lro.mncourts.gov/Directory/Search",
		Instructions: "Search by name or ID number",
	},
	"MS": {
		Name:         "Mississippi Bar",
		URL:          "https://www.msbar.org/for-the-public/find-an-attorney/",
		Instructions: "Use the attorney search",
	},
	"MO": {
		Name:         "Missouri Bar",
		URL:          "https://mobar.org/site/content/Find-a-Lawyer.aspx",
		Instructions: "Search the lawyer directory",
	},
	"MT": {
		Name:         "State Bar of Montana",
		URL:          "https://www.montanabar.org/page/LawyerSearch",
		Instructions: "Search for attorneys",
	},
	"NE": {
		Name:         "Nebraska State Bar",
		URL:          "https://www.nebar.com/search/custom.asp?id=2040",
		Instructions: "Search the attorney directory",
	},
	"NV": {
		Name:         "State Bar of Nevada",
		URL:          "https://www.nvbar.org/find-a-lawyer/",
		Instructions: "Use the attorney search",
	},
	"NH": {
		Name:         "New Hampshire Bar Association",
		URL:          "https://www.nhbar.org/lawyer-referral-service/find-a-lawyer",
		Instructions: "Search for attorneys",
	},
	"NJ": {
		Name:         "New Jersey Courts",
		URL:          "https://portal.njcourts.gov/njattywebpub/attorneySearch.action",
		Instructions: "Search by name or attorney ID",
	},
	"NM": {
		Name:         "State Bar of New Mexico",
		URL:          "https://www.sbnm.org/For-Public/Find-an-Attorney",
		Instructions: "Search the attorney directory",
	},
	"NY": {
		Name:         "New York Courts Attorney Search",
		URL:          "https://iapps.courts.state.ny.us/attorneyservices/search",
		Instructions: "Search by name or registration number",
	},
	"NC": {
		Name:         "North Carolina State Bar",
		URL:          "https://www.ncbar.gov/for-the-public/find-a-lawyer/",
		Instructions: "Search the lawyer directory",
	},
	"ND": {
		Name:         "State Bar Association of North Dakota",
		URL:          "https://www.sband.org/page/findattorney",
		Instructions: "Search for attorneys",
	},
	"OH": {
		Name:         "Ohio State Bar Association",
		URL:          "https://www.supremecourt.ohio.gov/Attorney/Search/",
		Instructions: "Search by name or registration number",
	},
	"OK": {
		Name:         "Oklahoma Bar Association",
		URL:          "https://www.okbar.org/findalawyer/",
		Instructions: "Use the lawyer search tool",
	},
	"OR": {
		Name:         "Oregon State Bar",
		URL:          "https://www.osbar.org/members/search.asp",
		Instructions: "Search by name or bar number",
	},
	"PA": {
		Name:         "Pennsylvania Disciplinary Board",
		URL:          "https://www.padisciplinaryboard.org/for-the-public/find-attorney",
		Instructions: "Search for attorneys by name",
	},
	"RI": {
		Name:         "Rhode Island Bar Association",
		URL:          "https://www.ribar.com/for-the-public/find-a-lawyer/",
		Instructions: "Use the lawyer finder",
	},
	"SC": {
		Name:         "South Carolina Bar",
		URL:          "https://www.scbar.org/public/find-a-lawyer/",
		Instructions: "Search the attorney directory",
	},
	"SD": {
		Name:         "State Bar of South Dakota",
		URL:          "https://www.statebarofsouthdakota.com/page/findanattorney",
		Instructions: "Search for attorneys",
	},
	"TN": {
		Name:         "Tennessee Board of Professional Responsibility",
		URL:          "https://www.tbpr.org/attorneys/find-an-attorney",
		Instructions: "Search by name or BPR number",
	},
	"TX": {
		Name:         "State Bar of Texas",
		URL:          "https://www.texasbar.com/AM/Template.cfm?Section=Find_A_Lawyer",
		Instructions: "Search by name or bar number",
	},
	"UT": {
		Name:         "Utah State Bar",
		URL:          "https://www.utahbar.org/public-services/find-a-lawyer/",
		Instructions: "Use the lawyer finder",
	},
	"VT": {
		Name:         "Vermont Bar Association",
		URL:          "https://www.vtbar.org/for-the-public/find-a-lawyer/",
		Instructions: "Search for attorneys",
	},
	"VA": {
		Name:         "Virginia State Bar",
		URL:          "https://www.vsb.org/vlrs/",
		Instructions: "Use the lawyer referral service",
	},
	"WA": {
		Name:         "Washington State Bar Association",
		URL:          "https://www.wsba.org/for-the-public/find-legal-help",
		Instructions: "Search the lawyer directory",
	},
	"WV": {
		Name:         "West Virginia State Bar",
		URL:          "https://www.wvbar.org/for-the-public/find-a-lawyer/",
		Instructions: "Search for attorneys",
	},
	"WI": {
		Name:         "State Bar of Wisconsin",
		URL:          "https://www.wisbar.org/forpublic/pages/find-a-lawyer.aspx",
		Instructions: "Use the lawyer search",
	},
	"WY": {
		Name:         "Wyoming State Bar",
		URL:          "https://www.wyomingbar.org/for-the-public/find-a-lawyer/",
		Instructions: "Search the attorney directory",
	},
}
