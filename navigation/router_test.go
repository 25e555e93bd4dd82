package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginURL(t *testing.T) {
	var testCases = []struct {
		description string
		loginPath   string
		returnPath  string
		expect      string
	}{
		{description: "default login path", returnPath: "/items", expect: "/ioa/login/login?redirect=%2Fitems"},
		{description: "custom login path", loginPath: "/login", returnPath: "/items?page=2", expect: "/login?redirect=%2Fitems%3Fpage%3D2"},
		{description: "empty return path", loginPath: "/login", expect: "/login?redirect="},
	}
	for _, testCase := range testCases {
		actual := LoginURL(testCase.loginPath, testCase.returnPath)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, testCase.returnPath, ReturnPath(actual), testCase.description)
	}
}

func TestRouter_Push(t *testing.T) {
	ctx := context.Background()
	router := NewRouter(WithInitialLocation("/home"))
	var changes [][2]string
	unsubscribe := router.OnChange(func(ctx context.Context, from, to string) {
		changes = append(changes, [2]string{from, to})
	})

	assert.True(t, router.Push(ctx, "/items"))
	assert.False(t, router.Push(ctx, "/items"))
	assert.Equal(t, "/items", router.Location(ctx))
	assert.Equal(t, [][2]string{{"/home", "/items"}}, changes)

	unsubscribe()
	assert.True(t, router.Push(ctx, "/users"))
	assert.Len(t, changes, 1)
	assert.Equal(t, []string{"/items", "/users"}, router.History())
}

func TestRouter_RedirectToLogin(t *testing.T) {
	ctx := context.Background()
	router := NewRouter(WithInitialLocation("/items?page=2"), WithLoginPath("/login"))
	assert.Equal(t, "/login", router.LoginPath())

	notified := 0
	router.OnChange(func(ctx context.Context, from, to string) { notified++ })

	assert.Nil(t, router.RedirectToLogin(ctx, router.Location(ctx)))
	assert.Equal(t, 1, notified)
	assert.Equal(t, "/items?page=2", ReturnPath(router.Location(ctx)))
}

func TestRouter_ContextLocation(t *testing.T) {
	router := NewRouter(WithInitialLocation("/home"))
	ctx := WithLocation(context.Background(), "/reports")
	assert.Equal(t, "/reports", router.Location(ctx))
	assert.Equal(t, "/home", router.Location(context.Background()))
}
