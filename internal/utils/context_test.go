// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSubjectCtxKey(t *testing.T) {
	if SubjectCtxKey.String() != "subject" {
		t.Errorf("expected 'subject', got '%s'", SubjectCtxKey.String())
	}
}

func TestGetSubjectFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, "renderer")

	subject, ok := GetSubjectFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if subject != "renderer" {
		t.Errorf("expected subject=renderer, got %s", subject)
	}
}

func TestGetSubjectFromContext_Missing(t *testing.T) {
	if _, ok := GetSubjectFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetSubjectFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, int64(42))

	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSubjectFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, "")

	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty subject, got true")
	}
}
