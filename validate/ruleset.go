package validate

import "github.com/dshills/ssmixgen/hl7"

// RuleSet represents a collection of validation rules that can be combined and reused.
type RuleSet interface {
	// Rules returns all rules in this set.
	Rules() []Rule
	// Add adds rules to this set and returns the set for chaining.
	Add(rules ...Rule) RuleSet
	// Merge combines this set with another set and returns a new set containing all rules.
	Merge(other RuleSet) RuleSet
}

// ruleSet is the concrete implementation of RuleSet.
type ruleSet struct {
	rules []Rule
}

// NewRuleSet creates a new RuleSet with the given rules.
func NewRuleSet(rules ...Rule) RuleSet {
	rs := &ruleSet{
		rules: make([]Rule, 0, len(rules)),
	}
	rs.rules = append(rs.rules, rules...)
	return rs
}

// Rules returns all rules in this set.
func (rs *ruleSet) Rules() []Rule {
	if rs.rules == nil {
		return []Rule{}
	}
	// Return a copy to prevent external modification
	result := make([]Rule, len(rs.rules))
	copy(result, rs.rules)
	return result
}

// Add adds rules to this set and returns the set for chaining.
func (rs *ruleSet) Add(rules ...Rule) RuleSet {
	rs.rules = append(rs.rules, rules...)
	return rs
}

// Merge combines this set with another set and returns a new set containing all rules.
func (rs *ruleSet) Merge(other RuleSet) RuleSet {
	if other == nil {
		return NewRuleSet(rs.rules...)
	}
	combined := make([]Rule, 0, len(rs.rules)+len(other.Rules()))
	combined = append(combined, rs.rules...)
	combined = append(combined, other.Rules()...)
	return NewRuleSet(combined...)
}

// MSHRules returns a RuleSet containing standard MSH segment validation rules.
// Validates:
//   - MSH.9 (Message Type) carries a real value
//   - MSH.10 (Message Control ID) carries a real value
//   - MSH.12 (Version ID) carries a real value
//
// None of these may ever be satisfied by the literal-null placeholder:
// there is no such thing as a message whose type or control ID is
// required but undefined.
func MSHRules() RuleSet {
	return NewRuleSet(
		At("MSH.9").RequiresRealValue().WithDescription("Message Type is required").Build(),
		At("MSH.10").RequiresRealValue().WithDescription("Message Control ID is required").Build(),
		At("MSH.12").RequiresRealValue().WithDescription("Version ID is required").Build(),
	)
}

// PIDRules returns a RuleSet containing standard PID segment validation rules.
// Validates:
//   - PID.3 (Patient Identifier List) carries a real value, never the
//     literal-null placeholder
func PIDRules() RuleSet {
	return NewRuleSet(
		At("PID.3").RequiresRealValue().WithDescription("Patient Identifier is required").Build(),
	)
}

// PV1Rules returns a RuleSet containing standard PV1 segment validation rules.
// Validates:
//   - PV1.2 (Patient Class) is required
func PV1Rules() RuleSet {
	return NewRuleSet(
		At("PV1.2").Required().WithDescription("Patient Class is required").Build(),
	)
}

// OBRRules returns a RuleSet containing standard OBR segment validation rules.
// Validates:
//   - OBR.4 (Universal Service Identifier) is required
func OBRRules() RuleSet {
	return NewRuleSet(
		At("OBR.4").Required().WithDescription("Universal Service Identifier is required").Build(),
	)
}

// OBXRules returns a RuleSet containing standard OBX segment validation rules.
// Validates:
//   - OBX.2 (Value Type) is required
//   - OBX.3 (Observation Identifier) is required
func OBXRules() RuleSet {
	return NewRuleSet(
		At("OBX.2").Required().WithDescription("Value Type is required").Build(),
		At("OBX.3").Required().WithDescription("Observation Identifier is required").Build(),
	)
}

// IN1Rules returns a RuleSet for the IN1 (Insurance) segment.
// Validates:
//   - IN1.2 (Insurance Plan ID) is required
//   - IN1.4 (Insurance Company Name) is required
func IN1Rules() RuleSet {
	return NewRuleSet(
		At("IN1.2").Required().WithDescription("Insurance Plan ID is required").Build(),
		At("IN1.4").Required().WithDescription("Insurance Company Name is required").Build(),
	)
}

// AL1Rules returns a RuleSet for the AL1 (Allergy) segment.
// Validates:
//   - AL1.2 (Allergen Type Code) is required
//   - AL1.3 (Allergen Code/Description) is required
func AL1Rules() RuleSet {
	return NewRuleSet(
		At("AL1.2").Required().WithDescription("Allergen Type is required").Build(),
		At("AL1.3").Required().WithDescription("Allergen Code/Description is required").Build(),
	)
}

// RXORules returns a RuleSet for the RXO (Pharmacy/Treatment Order) segment
// a prescription's OMP^O09 carries instead of RXE.
// Validates:
//   - RXO.1 (Requested Give Code) is required
func RXORules() RuleSet {
	return NewRuleSet(
		At("RXO.1").Required().WithDescription("Requested Give Code is required").Build(),
	)
}

// RXERules returns a RuleSet for the RXE (Pharmacy/Treatment Encoded Order)
// segment a ward-administered injection's OMP^O09 carries instead of RXO.
// Validates:
//   - RXE.2 (Give Code) is required
func RXERules() RuleSet {
	return NewRuleSet(
		At("RXE.2").Required().WithDescription("Give Code is required").Build(),
	)
}

// RXRRules returns a RuleSet for the RXR (Pharmacy/Treatment Route) segment
// every drug order, prescribed or injected, carries.
// Validates:
//   - RXR.1 (Route) is required
func RXRRules() RuleSet {
	return NewRuleSet(
		At("RXR.1").Required().WithDescription("Route is required").Build(),
	)
}

// SPMRules returns a RuleSet for the SPM (Specimen) segment an OML^O33
// lab order or ORU^R01 lab result carries when a specimen was recorded.
// Validates:
//   - SPM.4 (Specimen Type) is required
func SPMRules() RuleSet {
	return NewRuleSet(
		At("SPM.4").Required().WithDescription("Specimen Type is required").Build(),
	)
}

// ADTRules returns a RuleSet for ADT (Admit/Discharge/Transfer) messages.
// Combines MSH, PID, and PV1 rules: every SS-MIX2 ADT event (A01 admit, A03
// discharge, A08 patient update) carries a visit context, not just a
// patient identifier.
func ADTRules() RuleSet {
	return MSHRules().Merge(PIDRules()).Merge(PV1Rules())
}

// ORURules returns a RuleSet for ORU (Observation Result) messages.
// Combines MSH, PID, OBR, and OBX rules.
func ORURules() RuleSet {
	return MSHRules().
		Merge(PIDRules()).
		Merge(OBRRules()).
		Merge(OBXRules())
}

// OMPPrescriptionRules returns a RuleSet for an OMP^O09 prescription order
// built from RXO: MSH, PID, RXO, and RXR rules.
func OMPPrescriptionRules() RuleSet {
	return MSHRules().
		Merge(PIDRules()).
		Merge(RXORules()).
		Merge(RXRRules())
}

// OMPInjectionRules returns a RuleSet for an OMP^O09 injection order built
// from RXE: MSH, PID, RXE, and RXR rules.
func OMPInjectionRules() RuleSet {
	return MSHRules().
		Merge(PIDRules()).
		Merge(RXERules()).
		Merge(RXRRules())
}

// OMLRules returns a RuleSet for an OML^O33 laboratory order: MSH, PID,
// and OBR rules. SPM is validated separately via SPMRules since a lab
// order without an attached specimen is still valid.
func OMLRules() RuleSet {
	return MSHRules().
		Merge(PIDRules()).
		Merge(OBRRules())
}

// StandardRules returns a RuleSet containing the minimum standard rules
// that apply to all HL7 messages (MSH segment rules).
func StandardRules() RuleSet {
	return MSHRules()
}

// ProfileFor selects the message-profile RuleSet a generated message's
// MSH-9 type identifies. OMP^O09 carries two distinct bodies (RXO for a
// pharmacy-dispensed prescription, RXE for a ward-administered injection)
// so, for that type only, the choice also depends on which drug-order
// segment the message actually carries.
func ProfileFor(msg hl7.Message) RuleSet {
	var rules RuleSet
	code, trigger := msg.MessageTypeParts()
	switch code {
	case "ADT":
		switch trigger {
		case "A01", "A03", "A08":
			rules = ADTRules()
		default:
			rules = StandardRules()
		}
		if _, ok := msg.Segment("IN1"); ok {
			rules = rules.Merge(IN1Rules())
		}
		if _, ok := msg.Segment("AL1"); ok {
			rules = rules.Merge(AL1Rules())
		}
	case "ORU":
		rules = ORURules()
	case "OML":
		rules = OMLRules()
	case "OMP":
		if _, ok := msg.Segment("RXE"); ok {
			rules = OMPInjectionRules()
		} else {
			rules = OMPPrescriptionRules()
		}
	case "ACK":
		rules = StandardRules()
	default:
		rules = StandardRules()
	}
	if _, ok := msg.Segment("SPM"); ok {
		rules = rules.Merge(SPMRules())
	}
	return rules
}
