package util

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/visalhout/PagePair/pkg/pagepair"
)

func GetBatchDirectoryPath(batchId string) string {
	return fmt.Sprintf("batches/%s", batchId)
}

func ToBatchDirectoryPath(batchId string, filename string) string {
	return filepath.Join(GetBatchDirectoryPath(batchId), filepath.Base(filename))
}

func createBucketIfNotExists(ctx context.Context, s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

type FileUploadOptions struct {
	// Add a prefix to the object name
	// For example, if the file name is "scan_merged.jpg" and the prefix is "batches/123",
	// the resulting name will be "batches/123/scan_merged.jpg"
	DirectoryPath string
	UniquePrefix  bool
	Bucket        string
	S3            *minio.Client
}

// UploadResultToS3 pushes one converted output to object storage straight
// from memory.
func UploadResultToS3(ctx context.Context, result *pagepair.Result, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(ctx, fuo.S3, fuo.Bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	objectName := prepareFileName(result.OutputName, fuo)

	contentType := mime.TypeByExtension(filepath.Ext(result.OutputName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := fuo.S3.PutObject(
		ctx,
		fuo.Bucket,
		objectName,
		bytes.NewReader(result.Data),
		int64(len(result.Data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return info, nil
}

// Generates the final object name with uniqueness and prefix
func prepareFileName(originalName string, fuo *FileUploadOptions) string {
	fileName := originalName

	if fuo != nil {
		if fuo.UniquePrefix {
			fileName = AddUniquePrefixToFileName(originalName)
		}

		if fuo.DirectoryPath != "" {
			fileName = filepath.Join(fuo.DirectoryPath, fileName)
		}
	}

	return fileName
}
