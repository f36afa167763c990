// Package connector provides the ImageStore implementations that hold uploaded
// image files: a flat local directory and an S3 bucket.
package connector
