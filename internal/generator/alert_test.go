package generator

import (
	"slices"
	"testing"

	"pgregory.net/rapid"

	"kidsguard/internal/models"
)

func TestAlertResolution(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := NewSynthesizer(NewSeeded(rapid.Uint64().Draw(rt, "seed"), fixedClock), Catalog{GameIDs: []int64{1}}, TimelineSequential)
		alerts := s.Alerts(3)

		if len(alerts) < MinAlerts || len(alerts) > MaxAlerts {
			rt.Fatalf("got %d alerts, want [%d,%d]", len(alerts), MinAlerts, MaxAlerts)
		}

		for _, a := range alerts {
			if a.ChildID != 3 || a.TriggeredBy != "system" || !a.ShownToParent {
				rt.Errorf("unexpected alert header: %+v", a)
			}
			if a.Resolved {
				if a.ResolvedAt == nil || a.ResolvedAt.Before(a.CreatedAt) {
					rt.Errorf("resolved alert has resolvedAt %v, createdAt %v", a.ResolvedAt, a.CreatedAt)
				}
				if a.ParentResponse == nil || !slices.Contains(models.ParentResponses, *a.ParentResponse) {
					rt.Errorf("resolved alert has response %v", a.ParentResponse)
				}
				continue
			}
			if a.ResolvedAt != nil || a.ParentResponse != nil {
				rt.Errorf("unresolved alert carries resolution metadata: %+v", a)
			}
		}
	})
}

func TestAlertsComeFromCatalog(t *testing.T) {
	s := NewSynthesizer(NewSeeded(99, fixedClock), Catalog{GameIDs: []int64{1}}, TimelineSequential)

	for i := 0; i < 50; i++ {
		for _, a := range s.Alerts(1) {
			found := false
			for _, tmpl := range alertTemplates {
				if tmpl.Type == a.Type && tmpl.Severity == a.Severity && tmpl.Title == a.Title && tmpl.Message == a.Message {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("alert %q/%q does not match any template", a.Type, a.Title)
			}
		}
	}
}
