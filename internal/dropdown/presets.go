package dropdown

import "sort"

// cmsPOG links the CMS Physics Object Group documentation sites.
var cmsPOG = Spec{
	Title: "CMS POG Docs",
	Icon:  PluginIconPrefix + "CMSlogo_white_nolabel_1024_May2014.png",
	Links: []Link{
		{Text: "Analysis Corrections | CrossPOG", URL: "https://cms-analysis-corrections.docs.cern.ch/", Target: "_blank"},
		{Text: "BTV Docs", URL: "https://btv-wiki.docs.cern.ch/", Target: "_blank"},
		{Text: "JetMet TWiki", URL: "https://twiki.cern.ch/twiki/bin/viewauth/CMS/JetMET#Quick_links_to_current_recommend", Target: "_blank"},
		{Text: "E/Gamma TWiki", URL: "https://twiki.cern.ch/twiki/bin/viewauth/CMS/EgammaPOG", Target: "_blank"},
		{Text: "MUO Docs", URL: "https://muon-wiki.docs.cern.ch/guidelines/", Target: "_blank"},
		{Text: "TAU TWiki", URL: "https://twiki.cern.ch/twiki/bin/view/CMS/Tau#Instructions_Recommendations", Target: "_blank"},
		{Text: "PRO TWiki", URL: "https://twiki.cern.ch/twiki/bin/viewauth/CMS/TaggedProtonsPOGRecommendations", Target: "_blank"},
	},
}

// presets maps each preset identifier to its dropdown. Entries are never
// handed out directly; see Preset.
var presets = map[string]Spec{
	"cms-pog": cmsPOG,
}

// PresetNames returns the registered preset identifiers in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a copy of the named preset dropdown.
func Preset(name string) (Spec, error) {
	spec, ok := presets[name]
	if !ok {
		return Spec{}, &UnknownPresetError{Name: name, Available: PresetNames()}
	}
	return spec.Clone(), nil
}
