// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package errors

import "net/http"

// NewRelationConfigNotFound creates an Error for a write targeting an
// unconfigured (object_type, relation) pair.
func NewRelationConfigNotFound(objectType, relation string) *Error {
	return New(RelationConfigNotFound, "relation configuration not found").
		WithStatus(http.StatusUnprocessableEntity).
		WithDetails("object_type", objectType).
		WithDetails("relation", relation)
}

// NewInvalidSubjectType creates an Error for a write whose subject
// reference is not among the relation's directly assignable types.
func NewInvalidSubjectType(objectType, relation, subjectRef string) *Error {
	return New(InvalidSubjectType, "subject type not assignable to relation").
		WithStatus(http.StatusUnprocessableEntity).
		WithDetails("object_type", objectType).
		WithDetails("relation", relation).
		WithDetails("subject_ref", subjectRef)
}

// NewUsersetNotAllowed creates an Error for a write carrying a
// subject_relation the relation does not permit.
func NewUsersetNotAllowed(objectType, relation, subjectRef string) *Error {
	return New(UsersetNotAllowed, "userset subjects not allowed on this relation").
		WithStatus(http.StatusUnprocessableEntity).
		WithDetails("object_type", objectType).
		WithDetails("relation", relation).
		WithDetails("subject_ref", subjectRef)
}

// NewConditionNotFound creates an Error for a live tuple naming a
// condition that has no registered definition.
func NewConditionNotFound(conditionName string) *Error {
	return New(ConditionNotFound, "condition definition not found").
		WithStatus(http.StatusInternalServerError).
		WithDetails("condition_name", conditionName)
}

// NewConditionEvaluationError creates an Error for a condition that
// failed to evaluate for a reason other than a missing context variable.
func NewConditionEvaluationError(conditionName string, cause error) *Error {
	return Newf(ConditionEvaluationError, cause, "condition evaluation failed").
		WithStatus(http.StatusInternalServerError).
		WithDetails("condition_name", conditionName)
}

// NewInvalidStoredData creates an Error for a storage adapter returning
// a tuple, config, or condition shape the core cannot interpret.
func NewInvalidStoredData(objectType, relation string, cause error) *Error {
	return Newf(InvalidStoredData, cause, "invalid stored data shape").
		WithStatus(http.StatusInternalServerError).
		WithDetails("object_type", objectType).
		WithDetails("relation", relation)
}
