package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path"

	"farm2market_back_end/internal/database"

	"github.com/minio/minio-go/v7"
)

const productBucket = "product-images"

// UploadProductImage pousse la photo d'un listing dans MinIO et renvoie son URL publique
func UploadProductImage(ctx context.Context, productID string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// une image par produit, l'extension d'origine est conservée
	objectName := productID + path.Ext(file.Filename)

	_, err = database.MinIO.PutObject(ctx, productBucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), productBucket, objectName)
	return url, nil
}
