package search

import (
	"strconv"

	"kos-manager/internal/models"

	"github.com/meilisearch/meilisearch-go"
)

// SearchClient wraps the Meilisearch index holding property documents.
// The index mirrors the Kosan table; the database stays the source of
// truth and the index is rebuilt from it on demand.
type SearchClient struct {
	client *meilisearch.Client
	index  string
}

// KosanDocument is the flattened search document for one property
type KosanDocument struct {
	Id          uint   `json:"id"`
	NamaKosan   string `json:"nama_kosan"`
	Kota        string `json:"kota"`
	Alamat      string `json:"alamat"`
	Harga       int    `json:"harga"`
	JumlahKamar int    `json:"jumlah_kamar"`
	TipeKosan   string `json:"tipe_kosan"`
	ImageUri    string `json:"image_uri"`
}

func NewSearchClient(host, apiKey string) *SearchClient {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	return &SearchClient{
		client: client,
		index:  "kosan",
	}
}

// InitIndex initializes the Meilisearch index
func (s *SearchClient) InitIndex() error {
	// Create index if it doesn't exist
	_, err := s.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.index,
		PrimaryKey: "id",
	})
	// Ignore error if index already exists
	if err != nil && err.Error() != "index already exists" {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSearchableAttributes(&[]string{
		"nama_kosan",
		"kota",
		"alamat",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateFilterableAttributes(&[]string{
		"id",
		"kota",
		"harga",
		"tipe_kosan",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSortableAttributes(&[]string{
		"harga",
		"jumlah_kamar",
	})
	return err
}

func toDocument(k *models.Kosan) KosanDocument {
	return KosanDocument{
		Id:          k.Id,
		NamaKosan:   k.NamaKosan,
		Kota:        k.Kota,
		Alamat:      k.Alamat,
		Harga:       k.Harga,
		JumlahKamar: k.JumlahKamar,
		TipeKosan:   string(k.TipeKosan),
		ImageUri:    k.ImageUri,
	}
}

// IndexKosan indexes a single property
func (s *SearchClient) IndexKosan(kosan *models.Kosan) error {
	_, err := s.client.Index(s.index).AddDocuments([]KosanDocument{toDocument(kosan)})
	return err
}

// IndexAllKosan indexes multiple properties
func (s *SearchClient) IndexAllKosan(kosan []models.Kosan) error {
	if len(kosan) == 0 {
		return nil
	}
	docs := make([]KosanDocument, 0, len(kosan))
	for i := range kosan {
		docs = append(docs, toDocument(&kosan[i]))
	}
	_, err := s.client.Index(s.index).AddDocuments(docs)
	return err
}

// DeleteKosan removes a property from the index
func (s *SearchClient) DeleteKosan(id uint) error {
	_, err := s.client.Index(s.index).DeleteDocument(strconv.FormatUint(uint64(id), 10))
	return err
}

// SearchRequest represents search parameters
type SearchRequest struct {
	Query  string
	Limit  int64
	Offset int64
	Filter []string
	Sort   []string
}

// SearchResult represents search results
type SearchResult struct {
	Hits           []KosanDocument
	TotalHits      int64
	ProcessingTime int64
}

// Search searches for properties with basic options
func (s *SearchClient) Search(query string, limit int64) ([]KosanDocument, error) {
	result, err := s.AdvancedSearch(SearchRequest{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	return result.Hits, nil
}

// AdvancedSearch performs search with filters and sorting
func (s *SearchClient) AdvancedSearch(req SearchRequest) (*SearchResult, error) {
	if req.Limit == 0 {
		req.Limit = 20
	}

	searchReq := &meilisearch.SearchRequest{
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	if len(req.Filter) > 0 {
		filterStr := ""
		for i, f := range req.Filter {
			if i > 0 {
				filterStr += " AND "
			}
			filterStr += f
		}
		searchReq.Filter = filterStr
	}

	if len(req.Sort) > 0 {
		searchReq.Sort = req.Sort
	}

	searchRes, err := s.client.Index(s.index).Search(req.Query, searchReq)
	if err != nil {
		return nil, err
	}

	hits := make([]KosanDocument, 0, len(searchRes.Hits))
	for _, hit := range searchRes.Hits {
		hits = append(hits, parseKosanFromHit(hit))
	}

	return &SearchResult{
		Hits:           hits,
		TotalHits:      searchRes.EstimatedTotalHits,
		ProcessingTime: searchRes.ProcessingTimeMs,
	}, nil
}

// parseKosanFromHit converts a search hit to a KosanDocument
func parseKosanFromHit(hit interface{}) KosanDocument {
	hitMap, ok := hit.(map[string]interface{})
	if !ok {
		return KosanDocument{}
	}

	doc := KosanDocument{
		NamaKosan: getString(hitMap, "nama_kosan"),
		Kota:      getString(hitMap, "kota"),
		Alamat:    getString(hitMap, "alamat"),
		TipeKosan: getString(hitMap, "tipe_kosan"),
		ImageUri:  getString(hitMap, "image_uri"),
	}
	if id, ok := hitMap["id"].(float64); ok {
		doc.Id = uint(id)
	}
	if harga, ok := hitMap["harga"].(float64); ok {
		doc.Harga = int(harga)
	}
	if jumlah, ok := hitMap["jumlah_kamar"].(float64); ok {
		doc.JumlahKamar = int(jumlah)
	}
	return doc
}

// getString safely extracts a string from map
func getString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}
