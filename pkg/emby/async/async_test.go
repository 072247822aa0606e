package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/mmcdole/embygo/pkg/emby/async"
)

func TestAwaitReturnsValue(t *testing.T) {
	is := is.New(t)

	f := async.Go(func() (int, error) { return 42, nil })
	val, err := f.Await(context.Background())
	is.NoErr(err)
	is.Equal(val, 42)
}

func TestAwaitReturnsError(t *testing.T) {
	is := is.New(t)
	boom := errors.New("boom")

	f := async.Go(func() (string, error) { return "", boom })
	_, err := f.Await(context.Background())
	is.True(errors.Is(err, boom))
}

func TestAwaitIsRepeatable(t *testing.T) {
	is := is.New(t)

	f := async.Go(func() (int, error) { return 7, nil })
	ctx := context.Background()

	first, err := f.Await(ctx)
	is.NoErr(err)
	second, err := f.Await(ctx)
	is.NoErr(err)
	is.Equal(first, second)
}

func TestAwaitHonorsContext(t *testing.T) {
	is := is.New(t)
	release := make(chan struct{})
	defer close(release)

	f := async.Go(func() (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Await(ctx)
	is.True(errors.Is(err, context.Canceled))
}

func TestDoneSignalsCompletion(t *testing.T) {
	is := is.New(t)

	f := async.Go(func() (int, error) { return 1, nil })
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future never completed")
	}
	val, err := f.Await(context.Background())
	is.NoErr(err)
	is.Equal(val, 1)
}
