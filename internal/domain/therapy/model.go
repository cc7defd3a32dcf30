package therapy

// Agent is one lipid-lowering therapy with its fixed fractional LDL
// reduction and the outcome trial backing it.
type Agent struct {
	Name         string  `json:"name"`
	Class        string  `json:"class"`
	LDLReduction float64 `json:"ldl_reduction"`
	Trial        string  `json:"trial,omitempty"`
	TrialURL     string  `json:"trial_url,omitempty"`
	// Advanced agents are gated on the projected LDL of the rest of the
	// regimen.
	Advanced bool `json:"advanced"`
}

// Clinical bounds of the projection model.
const (
	// MinProjectedLDL is the clinical floor for projected LDL (mmol/L).
	MinProjectedLDL = 0.5
	// AdvancedLDLThreshold gates PCSK9 inhibitors and Inclisiran: they are
	// selectable only while projected LDL stays strictly above it (mmol/L).
	AdvancedLDLThreshold = 1.8
)

// Agent names. Used as stable identifiers in selections.
const (
	Simvastatin20  = "Simvastatin 20 mg"
	Simvastatin40  = "Simvastatin 40 mg"
	Atorvastatin10 = "Atorvastatin 10 mg"
	Atorvastatin80 = "Atorvastatin 80 mg"
	Rosuvastatin5  = "Rosuvastatin 5 mg"
	Rosuvastatin20 = "Rosuvastatin 20 mg"
	Ezetimibe10    = "Ezetimibe 10 mg"
	BempedoicAcid  = "Bempedoic acid"
	PCSK9Inhibitor = "PCSK9 inhibitor"
	Inclisiran     = "Inclisiran"
)

const cttMetaAnalysisURL = "https://pubmed.ncbi.nlm.nih.gov/20167315/"

// registry lists every agent the model knows, in display order.
var registry = []Agent{
	{Name: Simvastatin20, Class: "statin", LDLReduction: 0.10, Trial: "CTT meta-analysis", TrialURL: cttMetaAnalysisURL},
	{Name: Simvastatin40, Class: "statin", LDLReduction: 0.20, Trial: "CTT meta-analysis", TrialURL: cttMetaAnalysisURL},
	{Name: Atorvastatin10, Class: "statin", LDLReduction: 0.30, Trial: "CTT meta-analysis", TrialURL: cttMetaAnalysisURL},
	{Name: Atorvastatin80, Class: "statin", LDLReduction: 0.50, Trial: "CTT meta-analysis", TrialURL: cttMetaAnalysisURL},
	{Name: Rosuvastatin5, Class: "statin", LDLReduction: 0.25, Trial: "CTT meta-analysis", TrialURL: cttMetaAnalysisURL},
	{Name: Rosuvastatin20, Class: "statin", LDLReduction: 0.55, Trial: "CTT meta-analysis", TrialURL: cttMetaAnalysisURL},
	{Name: Ezetimibe10, Class: "cholesterol absorption inhibitor", LDLReduction: 0.20, Trial: "IMPROVE-IT", TrialURL: "https://pubmed.ncbi.nlm.nih.gov/26405142/"},
	{Name: BempedoicAcid, Class: "ACL inhibitor", LDLReduction: 0.18, Trial: "CLEAR Outcomes", TrialURL: "https://pubmed.ncbi.nlm.nih.gov/35338941/"},
	{Name: PCSK9Inhibitor, Class: "PCSK9 monoclonal antibody", LDLReduction: 0.60, Trial: "FOURIER", TrialURL: "https://pubmed.ncbi.nlm.nih.gov/28436927/", Advanced: true},
	{Name: Inclisiran, Class: "PCSK9 siRNA", LDLReduction: 0.55, Trial: "ORION-10", TrialURL: "https://pubmed.ncbi.nlm.nih.gov/32302303/", Advanced: true},
}

var agentsByName = func() map[string]Agent {
	m := make(map[string]Agent, len(registry))
	for _, a := range registry {
		m[a.Name] = a
	}
	return m
}()

// Registry returns every known agent in display order.
func Registry() []Agent {
	out := make([]Agent, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the agent with the given name.
func Lookup(name string) (Agent, bool) {
	a, ok := agentsByName[name]
	return a, ok
}

// Selection is the set of agents a patient is on: pre-admission therapy plus
// newly initiated or intensified therapy.
type Selection struct {
	PreAdmission   []string `json:"pre_admission"`
	NewlyInitiated []string `json:"newly_initiated"`
}

// AppliedEffect records one agent's multiplicative discount within a
// projection, with the running LDL after it was applied.
type AppliedEffect struct {
	Agent        string  `json:"agent"`
	LDLReduction float64 `json:"ldl_reduction"`
	LDLAfter     float64 `json:"ldl_after"`
}

// Projection is the derived post-therapy LDL with the gating decisions for
// the advanced agents.
type Projection struct {
	BaselineLDL        float64         `json:"baseline_ldl"`
	ProjectedLDL       float64         `json:"projected_ldl"`
	Applied            []AppliedEffect `json:"applied"`
	PCSK9Eligible      bool            `json:"pcsk9_eligible"`
	InclisiranEligible bool            `json:"inclisiran_eligible"`
}
