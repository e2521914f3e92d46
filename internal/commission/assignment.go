package commission

import "sort"

// PlanLookup resolves the plan a producer is paid under for a period.
// It returns ErrNoActivePlan or ErrMultipleActivePlans when no single plan applies.
type PlanLookup interface {
	PlanFor(producerID string, period Period) (CompPlan, error)
}

// AssignmentSet is an in-memory PlanLookup built from rows the host has loaded.
type AssignmentSet struct {
	plans       map[string]CompPlan
	assignments map[string][]ProducerAssignment
}

func NewAssignmentSet(plans []CompPlan, assignments []ProducerAssignment) *AssignmentSet {
	s := &AssignmentSet{
		plans:       make(map[string]CompPlan, len(plans)),
		assignments: make(map[string][]ProducerAssignment),
	}
	for _, p := range plans {
		s.plans[p.ID] = p
	}
	for _, a := range assignments {
		s.assignments[a.ProducerID] = append(s.assignments[a.ProducerID], a)
	}
	for id := range s.assignments {
		rows := s.assignments[id]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].EffectiveFrom.After(rows[j].EffectiveFrom)
		})
	}
	return s
}

// PlanFor returns the plan of the single assignment active in the period.
// Two assignments touching the same month is ambiguous and fails closed.
// An assignment pointing at an unknown plan counts as missing.
func (s *AssignmentSet) PlanFor(producerID string, period Period) (CompPlan, error) {
	var active []ProducerAssignment
	for _, a := range s.assignments[producerID] {
		if a.ActiveIn(period) {
			active = append(active, a)
		}
	}

	switch len(active) {
	case 0:
		return CompPlan{}, ErrNoActivePlan
	case 1:
		plan, ok := s.plans[active[0].PlanID]
		if !ok {
			return CompPlan{}, ErrNoActivePlan
		}
		return plan, nil
	default:
		return CompPlan{}, ErrMultipleActivePlans
	}
}
