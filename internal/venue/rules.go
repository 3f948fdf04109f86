package venue

// Rule associates a set of keyword patterns with the canonical venue name to
// substitute when any keyword matches.
type Rule struct {
	Keywords []string
	Name     string
}

// defaultRules is the built-in rule table, in priority order (later rules win).
var defaultRules = []Rule{
	{Keywords: []string{"usenix security", "security symposium"}, Name: "USENIX Security Symposium"},
	{Keywords: []string{"computer and communications security"}, Name: "ACM Conference on Computer and Communications Security"},
	{Keywords: []string{"ndss", "network and distributed system security"}, Name: "Network and Distributed System Security Symposium"},
	{Keywords: []string{"symposium on security and privacy", "oakland"}, Name: "IEEE Symposium on Security and Privacy"},
	{Keywords: []string{"internet measurement conference", "sigcomm imc"}, Name: "ACM Internet Measurement Conference"},
	{Keywords: []string{"world wide web conference", "www conference"}, Name: "International World Wide Web Conference"},
	{Keywords: []string{"sigcomm conference", "special interest group on data communication"}, Name: "ACM SIGCOMM Conference"},
	{Keywords: []string{"networked systems design and implementation", "nsdi"}, Name: "USENIX Symposium on Networked Systems Design and Implementation"},
	{Keywords: []string{"operating systems design and implementation", "osdi"}, Name: "USENIX Symposium on Operating Systems Design and Implementation"},
	{Keywords: []string{"symposium on operating systems principles", "sosp"}, Name: "ACM Symposium on Operating Systems Principles"},
	{Keywords: []string{"privacy enhancing technologies"}, Name: "Privacy Enhancing Technologies Symposium"},
	{Keywords: []string{"computer security applications conference", "acsac"}, Name: "Annual Computer Security Applications Conference"},
	{Keywords: []string{"recent advances in intrusion detection", "attacks, intrusions and defenses"}, Name: "International Symposium on Research in Attacks, Intrusions and Defenses"},
	{Keywords: []string{"detection of intrusions and malware", "dimva"}, Name: "Conference on Detection of Intrusions and Malware and Vulnerability Assessment"},
	{Keywords: []string{"usable privacy and security", "soups"}, Name: "Symposium on Usable Privacy and Security"},
	{Keywords: []string{"electronic crime research", "ecrime"}, Name: "APWG Symposium on Electronic Crime Research"},
	{Keywords: []string{"workshop on the economics of information security", "weis"}, Name: "Workshop on the Economics of Information Security"},
	{Keywords: []string{"human factors in computing systems"}, Name: "ACM CHI Conference on Human Factors in Computing Systems"},
	{Keywords: []string{"knowledge discovery and data mining", "sigkdd"}, Name: "ACM SIGKDD Conference on Knowledge Discovery and Data Mining"},
	{Keywords: []string{"neural information processing systems", "neurips"}, Name: "Conference on Neural Information Processing Systems"},
	{Keywords: []string{"arxiv", "corr abs"}, Name: "arXiv preprint"},
}

// DefaultRules returns a copy of the built-in rule table.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}
