package reconcile

import "pipeline-hud/core/model"

// recordingStore is a LogStore that records the calls it receives.
type recordingStore struct {
	calls    []string
	appended []*model.LogList
}

func (s *recordingStore) Append(list *model.LogList) {
	s.calls = append(s.calls, "append")
	s.appended = append(s.appended, list)
}

func (s *recordingStore) Reset() {
	s.calls = append(s.calls, "reset")
	s.appended = nil
}

func res(name string, order int32) *model.UIResource {
	return &model.UIResource{
		Metadata: model.ObjectMeta{Name: name},
		Status:   model.UIResourceStatus{Order: order},
	}
}

func tombstone(name string) *model.UIResource {
	return &model.UIResource{
		Metadata: model.ObjectMeta{Name: name, DeletionTimestamp: "now"},
	}
}

func button(name string) *model.UIButton {
	return &model.UIButton{Metadata: model.ObjectMeta{Name: name}}
}

func cluster(name string) *model.Cluster {
	return &model.Cluster{Metadata: model.ObjectMeta{Name: name}}
}

func session(startTime string) *model.UISession {
	return &model.UISession{
		Metadata: model.ObjectMeta{Name: "Tiltfile"},
		Status:   model.UISessionStatus{TiltStartTime: startTime},
	}
}

func names[T model.Entity](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.GetName())
	}
	return out
}
