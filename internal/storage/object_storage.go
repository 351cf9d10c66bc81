package storage

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"envlinks/internal/types"
)

type (
	ObjectCredentials struct {
		Endpoint    string
		AccessKeyID string
		SecretKey   string
		Region      string
		Secure      bool
		Bucket      string
		Object      string
	}

	objectSource struct {
		client *minio.Client
		bucket string
		object string
	}
)

// NewObjectSource reads the default document from an S3 compatible bucket.
func NewObjectSource(cred ObjectCredentials) (Source, error) {
	if cred.Bucket == "" || cred.Object == "" {
		return nil, errors.New("object storage source requires bucket and object")
	}

	mn, err := minio.New(cred.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cred.AccessKeyID, cred.SecretKey, ""),
		Secure: cred.Secure,
		Region: cred.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create object storage client")
	}
	return &objectSource{
		client: mn,
		bucket: cred.Bucket,
		object: cred.Object,
	}, nil
}

func (s *objectSource) LoadDefault(ctx context.Context) (types.Configuration, error) {
	location := s.bucket + "/" + s.object
	r, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return types.Configuration{}, types.NewError(types.ErrFetch, location, err)
	}

	defer func() {
		_ = r.Close()
	}()

	raw, err := readDocument(r, location)
	if err != nil {
		return types.Configuration{}, err
	}

	return decode(raw)
}
