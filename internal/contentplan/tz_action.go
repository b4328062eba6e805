// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contentplan

import "github.com/MKhiriev/content-console/models"

// TZActionKind tells whether the TZ action of a content plan item opens an
// existing technical specification or starts a new one.
type TZActionKind int

const (
	// TZActionCreate starts a new technical specification for the item.
	TZActionCreate TZActionKind = iota
	// TZActionEdit opens the item's existing technical specification.
	TZActionEdit
)

// TZAction is the resolved TZ action: ID is the content plan item id for
// TZActionCreate and the technical specification id for TZActionEdit.
type TZAction struct {
	Kind TZActionKind
	ID   string
}

// Label is the caption of the action in the content plan table.
func (a TZAction) Label() string {
	if a.Kind == TZActionEdit {
		return "Редактировать ТЗ"
	}
	return "Создать ТЗ"
}

// ResolveTZAction edits when the item both reports a technical
// specification and carries its id, and creates otherwise.
func ResolveTZAction(item models.ContentPlanItem) TZAction {
	if item.HasTechnicalSpecification && item.TechnicalSpecificationID != nil && *item.TechnicalSpecificationID != "" {
		return TZAction{Kind: TZActionEdit, ID: *item.TechnicalSpecificationID}
	}
	return TZAction{Kind: TZActionCreate, ID: item.ID}
}

// DispatchTZ invokes exactly one of the callbacks according to
// [ResolveTZAction].
func DispatchTZ(item models.ContentPlanItem, onCreate func(contentPlanID string), onEdit func(tzID string)) {
	action := ResolveTZAction(item)
	if action.Kind == TZActionEdit {
		onEdit(action.ID)
		return
	}
	onCreate(action.ID)
}
