package client

import (
	"context"
	"net/http"
)

// Get, Post, Put and Delete are typed shortcuts over Requester.Do. A missing
// data member yields the zero value of T.

func Get[T any](ctx context.Context, r Requester, endpoint string, headers http.Header) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodGet, endpoint, nil, headers, &out)
	return out, err
}

func Post[T any](ctx context.Context, r Requester, endpoint string, body any, headers http.Header) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPost, endpoint, body, headers, &out)
	return out, err
}

func Put[T any](ctx context.Context, r Requester, endpoint string, body any, headers http.Header) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPut, endpoint, body, headers, &out)
	return out, err
}

func Delete[T any](ctx context.Context, r Requester, endpoint string, headers http.Header) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodDelete, endpoint, nil, headers, &out)
	return out, err
}
