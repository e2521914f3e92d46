package commission

// ApplyOverride returns metrics with the override's non-nil written figures swapped in.
// Itemized insureds and chargeback data pass through untouched.
func ApplyOverride(m SubProducerMetrics, o *ManualOverride) (SubProducerMetrics, OverrideAudit) {
	audit := OverrideAudit{
		RawWrittenItems:   m.WrittenItems,
		RawWrittenPremium: m.WrittenPremium,
		WrittenItems:      m.WrittenItems,
		WrittenPremium:    m.WrittenPremium,
	}
	if o == nil {
		return m, audit
	}

	if o.WrittenItems != nil {
		m.WrittenItems = *o.WrittenItems
		audit.Applied = true
	}
	if o.WrittenPremium != nil {
		m.WrittenPremium = *o.WrittenPremium
		audit.Applied = true
	}
	audit.WrittenItems = m.WrittenItems
	audit.WrittenPremium = m.WrittenPremium
	if audit.Applied {
		audit.Note = o.Note
	}

	return m, audit
}

// indexOverrides keys overrides by producer. Entries for the same producer merge field by field;
// a later non-nil figure or non-empty note wins over an earlier one.
func indexOverrides(overrides []ManualOverride) map[string]*ManualOverride {
	idx := make(map[string]*ManualOverride, len(overrides))
	for _, o := range overrides {
		cur, ok := idx[o.ProducerID]
		if !ok {
			merged := o
			idx[o.ProducerID] = &merged
			continue
		}
		if o.WrittenItems != nil {
			cur.WrittenItems = o.WrittenItems
		}
		if o.WrittenPremium != nil {
			cur.WrittenPremium = o.WrittenPremium
		}
		if o.Note != "" {
			cur.Note = o.Note
		}
	}
	return idx
}
