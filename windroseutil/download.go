/*
Copyright © 2018 the windrose authors.
This file is part of windrose.

windrose is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

windrose is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with windrose.  If not, see <http://www.gnu.org/licenses/>.
*/

package windroseutil

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/google/go-cloud/blob"
	"github.com/google/go-cloud/blob/fileblob"
	"github.com/google/go-cloud/blob/gcsblob"
	"github.com/google/go-cloud/blob/s3blob"
	"github.com/google/go-cloud/gcp"
	"github.com/sirupsen/logrus"
)

// maybeDownload checks if the input is an existing file locally.
// If not, and it is a URL or a blob, it downloads the file and
// returns the path to the downloaded file. Any other path is
// returned unchanged.
func maybeDownload(ctx context.Context, path string, log logrus.FieldLogger) (string, error) {
	// Check if local file exists. If it does, return the given path.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return path, nil
	}

	// If the path starts with one of these prefixes, download the file and
	// return the location it was downloaded to.
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		log.WithField("url", path).Info("downloading input")
		return downloadHTTP(path)
	}

	if IsBlob(path) {
		log.WithField("blob", path).Info("downloading input")
		return downloadBlob(ctx, path)
	}

	return path, nil
}

// downloadHTTP downloads a file from the specified URL and returns
// the path to the downloaded file.
func downloadHTTP(path string) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return path, fmt.Errorf("windrose: parsing input URL: %v", err)
	}
	resp, err := http.Get(path)
	if err != nil {
		return path, fmt.Errorf("windrose: downloading input: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return path, fmt.Errorf("windrose: downloading input %s: %s", path, resp.Status)
	}
	return saveTemp(filepath.Base(u.Path), resp.Body)
}

// saveTemp copies r to a file with the given base name in a new
// temporary directory.
func saveTemp(name string, r io.Reader) (string, error) {
	// Prepare a temporary directory for the downloads.
	dir, err := ioutil.TempDir("", "windrose")
	if err != nil {
		return "", fmt.Errorf("windrose: failed creating temporary download directory: %v", err)
	}
	if name == "" || name == "." || name == "/" {
		name = "input.csv"
	}
	fname := filepath.Join(dir, name)
	w, err := os.Create(fname)
	if err != nil {
		return "", fmt.Errorf("windrose: failed creating file for download: %v", err)
	}
	if _, err = io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("windrose: downloading input: %v", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("windrose: downloading input: %v", err)
	}
	return fname, nil
}

// IsBlob returns whether the given filename represents a blob.
// (i.e., if it starts with `gs://`, 's3://', or 'file://').
func IsBlob(path string) bool {
	return strings.HasPrefix(path, "gs://") || strings.HasPrefix(path, "s3://") || strings.HasPrefix(path, "file://")
}

// OpenBucket returns the blob storage bucket specified by bucketName,
// where bucketName must be in the format 'provider://name' where provider
// is the name of the storage provider and name is the name of the bucket.
// The currently accepted storage providers are "file" for the local filesystem
// (e.g., for testing), "gs" for Google Cloud Storage, and "s3" for AWS S3.
func OpenBucket(ctx context.Context, bucketName string) (*blob.Bucket, error) {
	url, err := url.Parse(bucketName)
	if err != nil {
		return nil, fmt.Errorf("windroseutil.OpenBucket: %v", err)
	}
	switch url.Scheme {
	case "file":
		return fileblob.NewBucket(url.Hostname())
	case "gs":
		return gsBucket(ctx, url.Hostname())
	case "s3":
		return s3Bucket(ctx, url.Hostname())
	default:
		return nil, fmt.Errorf("windroseutil.OpenBucket: invalid provider %s", url.Scheme)
	}
}

func gsBucket(ctx context.Context, name string) (*blob.Bucket, error) {
	// See here for information on credentials:
	// https://cloud.google.com/docs/authentication/getting-started
	creds, err := gcp.DefaultCredentials(ctx)
	if err != nil {
		return nil, err
	}
	c, err := gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
	if err != nil {
		return nil, err
	}
	return gcsblob.OpenBucket(ctx, name, c)
}

// s3Bucket opens an s3 storage bucket. It assumes the following
// environment variables are set: AWS_REGION, AWS_ACCESS_KEY_ID, and
// AWS_SECRET_ACCESS_KEY.
func s3Bucket(ctx context.Context, name string) (*blob.Bucket, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}
	c := &aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewEnvCredentials(),
	}
	s, err := session.NewSession(c)
	if err != nil {
		return nil, err
	}
	return s3blob.OpenBucket(ctx, s, name)
}

// downloadBlob downloads the specified file from blob storage.
func downloadBlob(ctx context.Context, path string) (string, error) {
	url, err := url.Parse(path)
	if err != nil {
		return path, fmt.Errorf("windrose: parsing input blob: %v", err)
	}
	bucket, err := OpenBucket(ctx, url.Scheme+"://"+url.Host)
	if err != nil {
		return path, fmt.Errorf("windrose: opening input bucket: %v", err)
	}
	r, err := bucket.NewReader(ctx, strings.TrimPrefix(url.Path, "/"))
	if err != nil {
		return path, fmt.Errorf("windrose: reading input blob: %v", err)
	}
	defer r.Close()
	return saveTemp(filepath.Base(url.Path), r)
}
