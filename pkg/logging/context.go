package logging

import (
	"context"
)

const (
	RequestIDKey  = "request_id"
	ChatIDKey     = "chat_id"
	CollectionKey = "collection"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func WithChatID(ctx context.Context, chatID int64) context.Context {
	return context.WithValue(ctx, ChatIDKey, chatID)
}

func WithCollection(ctx context.Context, collection string) context.Context {
	return context.WithValue(ctx, CollectionKey, collection)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func GetChatID(ctx context.Context) int64 {
	if chatID, ok := ctx.Value(ChatIDKey).(int64); ok {
		return chatID
	}
	return 0
}

func GetCollection(ctx context.Context) string {
	if collection, ok := ctx.Value(CollectionKey).(string); ok {
		return collection
	}
	return ""
}

func GetLogFields(ctx context.Context) []interface{} {
	fields := make([]interface{}, 0, 6)

	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}

	if chatID := GetChatID(ctx); chatID != 0 {
		fields = append(fields, "chat_id", chatID)
	}

	if collection := GetCollection(ctx); collection != "" {
		fields = append(fields, "collection", collection)
	}

	return fields
}
