package console

import "context"

type contextKey string

const choiceKey contextKey = "menuChoice"

func withChoice(ctx context.Context, choice string) context.Context {
	return context.WithValue(ctx, choiceKey, choice)
}

func choiceFromContext(ctx context.Context) (string, bool) {
	choice, ok := ctx.Value(choiceKey).(string)

	return choice, ok
}
