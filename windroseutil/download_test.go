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
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func helperLog(t *testing.T) logrus.FieldLogger {
	log, err := newLogger("debug", ioutil.Discard)
	if err != nil {
		t.Fatal(err)
	}
	return log
}

func TestMaybeDownloadLocal(t *testing.T) {
	const path = "testdata/march2014.csv"
	k, err := maybeDownload(context.Background(), path, helperLog(t))
	if err != nil {
		t.Fatal(err)
	}
	if k != path {
		t.Errorf("expected %s, got %s", path, k)
	}
}

func TestMaybeDownloadUnknown(t *testing.T) {
	k, err := maybeDownload(context.Background(), "/blah/test/", helperLog(t))
	if err != nil {
		t.Fatal(err)
	}
	if k != "/blah/test/" {
		t.Errorf("expected /blah/test/, got %s", k)
	}
}

func TestMaybeDownloadRemote(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(http.Dir("testdata")))
	defer srv.Close()

	k, err := maybeDownload(context.Background(), srv.URL+"/march2014.csv", helperLog(t))
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(filepath.Dir(k))
	if !strings.HasSuffix(k, "march2014.csv") {
		t.Errorf("expected tempDir/march2014.csv, got %s", k)
	}
	want, err := ioutil.ReadFile("testdata/march2014.csv")
	if err != nil {
		t.Fatal(err)
	}
	have, err := ioutil.ReadFile(k)
	if err != nil {
		t.Fatal(err)
	}
	if string(have) != string(want) {
		t.Errorf("downloaded %q, want %q", have, want)
	}
}

func TestMaybeDownloadRemoteFail(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(http.Dir("testdata")))
	defer srv.Close()

	if _, err := maybeDownload(context.Background(), srv.URL+"/missing.csv", helperLog(t)); err == nil {
		t.Error("expected an error for a missing remote file")
	}
	if _, err := maybeDownload(context.Background(), "http://localhost:1/test.csv", helperLog(t)); err == nil {
		t.Error("expected an error for an unreachable server")
	}
}

func TestMaybeDownloadBlob(t *testing.T) {
	k, err := maybeDownload(context.Background(), "file://testdata/march2014.csv", helperLog(t))
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(filepath.Dir(k))
	if filepath.Base(k) != "march2014.csv" {
		t.Errorf("expected tempDir/march2014.csv, got %s", k)
	}
	if _, err := maybeDownload(context.Background(), "file://testdata/missing.csv", helperLog(t)); err == nil {
		t.Error("expected an error for a missing blob")
	}
}

func TestIsBlob(t *testing.T) {
	for path, want := range map[string]bool{
		"gs://bucket/obs.csv":  true,
		"s3://bucket/obs.csv":  true,
		"file://dir/obs.csv":   true,
		"http://host/obs.csv":  false,
		"testdata/obs.csv":     false,
		"/gs://not/a/blob.csv": false,
	} {
		if have := IsBlob(path); have != want {
			t.Errorf("IsBlob(%q) = %v, want %v", path, have, want)
		}
	}
}

func TestOpenBucketInvalid(t *testing.T) {
	if _, err := OpenBucket(context.Background(), "ftp://bucket"); err == nil {
		t.Error("expected an error for an unknown provider")
	}
}
