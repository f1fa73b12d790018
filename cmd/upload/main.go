package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

const defaultURL = "http://127.0.0.1:8080/api/v1/scenes"

var (
	uploadURL   string
	location    string
	sublocation string
	timeoutSec  int
)

var rootCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload local scene files to a GeoInsight server",
	Long: `Uploads one or more local files to the scene upload endpoint.

Examples:
  upload image.jpg --location "New Delhi" --sublocation "North"
  upload scene1.png scene2.png --location mumbai`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.Flags().StringVar(&uploadURL, "url", defaultURL, "Upload endpoint URL")
	rootCmd.Flags().StringVar(&location, "location", "", "Location name (e.g. 'New Delhi')")
	rootCmd.Flags().StringVar(&sublocation, "sublocation", "", "Sub-area name (e.g. 'North')")
	rootCmd.Flags().IntVar(&timeoutSec, "timeout", 30, "Request timeout in seconds")
	rootCmd.MarkFlagRequired("location")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runUpload(cmd *cobra.Command, args []string) error {
	client := &http.Client{Timeout: time.Duration(timeoutSec) * time.Second}

	anyFail := false
	for _, path := range args {
		fmt.Printf("Uploading: %s -> %s\n", path, uploadURL)
		if err := uploadFile(client, path); err != nil {
			anyFail = true
			fmt.Printf("[FAIL] %s: %v\n", path, err)
			continue
		}
		fmt.Printf("[OK] uploaded: %s\n", path)
	}

	if anyFail {
		os.Exit(2)
	}
	return nil
}

func uploadFile(client *http.Client, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("location", location); err != nil {
		return err
	}
	if err := writer.WriteField("sublocation", sublocation); err != nil {
		return err
	}

	part, err := writer.CreatePart(fileHeader(filepath.Base(path)))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, uploadURL, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err == nil {
		fmt.Println(pretty.String())
	}
	return nil
}

// fileHeader builds the multipart part header with the detected content type.
func fileHeader(filename string) textproto.MIMEHeader {
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	return h
}
