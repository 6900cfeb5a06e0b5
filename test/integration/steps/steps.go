//go:build integration

package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ecotrack/backend/internal/integration/entrypoint/dto"
	"github.com/ecotrack/backend/internal/integration/persistence/model"
	"github.com/ecotrack/backend/test/integration/mock"
)

const defaultPassword = "Password123!"

var activityPlaceholder = regexp.MustCompile(`\{\{activity:([^}]+)\}\}`)

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return errors.New("test server is not running")
	}
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	resp.Body.Close()
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return err
	}
	t.currentUserID = user.ID
	return nil
}

func (t *testContext) iAmLoggedInAs(email string) error {
	var existing model.UserModel
	err := t.db.DbConn.Where("email = ?", email).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := t.createUser(email, defaultPassword, "Test User"); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		t.currentUserID = existing.ID
	}

	payload, _ := json.Marshal(dto.LoginRequest{Email: email, Password: defaultPassword})
	t.accessToken = ""
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", t.response.status, t.response.raw)
	}

	var auth dto.AuthResponse
	if err := json.Unmarshal(t.response.raw, &auth); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	t.accessToken = auth.AccessToken
	t.refreshToken = auth.RefreshToken
	return nil
}

func (t *testContext) iRecordedOfDaysAgo(quantity, activity string, days int) error {
	activityID, err := t.activityID(activity)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(quantity, 64)
	if err != nil {
		return err
	}

	payload, _ := json.Marshal(dto.CreateFootprintRequest{
		ActivityID: activityID,
		Quantity:   &amount,
		OccurredOn: time.Now().UTC().AddDate(0, 0, -days).Format(dto.DateLayout),
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/footprints", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("failed to record footprint, status %d: %s", t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) iTrackTimes(activity string, frequency int, habitType string) error {
	activityID, err := t.activityID(activity)
	if err != nil {
		return err
	}

	payload, _ := json.Marshal(dto.CreateHabitRequest{
		ActivityID: activityID,
		Frequency:  frequency,
		Type:       habitType,
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/habits", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("failed to create habit, status %d: %s", t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) activityID(name string) (string, error) {
	var activity model.ActivityModel
	if err := t.db.DbConn.Where("name = ?", name).First(&activity).Error; err != nil {
		return "", fmt.Errorf("activity %q not found: %w", name, err)
	}
	return activity.ID.String(), nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	today := time.Now().UTC()
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{footprint_id}}", t.lastFootprintID.String())
	content = strings.ReplaceAll(content, "{{habit_id}}", t.lastHabitID.String())
	content = strings.ReplaceAll(content, "{{today}}", today.Format(dto.DateLayout))
	content = strings.ReplaceAll(content, "{{yesterday}}", today.AddDate(0, 0, -1).Format(dto.DateLayout))
	content = strings.ReplaceAll(content, "{{tomorrow}}", today.AddDate(0, 0, 1).Format(dto.DateLayout))

	return activityPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		name := activityPlaceholder.FindStringSubmatch(match)[1]
		id, err := t.activityID(name)
		if err != nil {
			return match
		}
		return id
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}

	var responseBody map[string]any
	if err := json.Unmarshal(raw, &responseBody); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = responseBody

	// Remember created resources so later steps can address them.
	if idStr, ok := responseBody["id"].(string); ok && method == http.MethodPost {
		if id, err := uuid.Parse(idStr); err == nil {
			if _, isFootprint := responseBody["impact_kg"]; isFootprint {
				t.lastFootprintID = id
			} else if _, isHabit := responseBody["estimated_impact_kg"]; isHabit {
				t.lastHabitID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	list, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(list) != quantity {
		return fmt.Errorf("expected %d items in '%s', got %d", quantity, field, len(list))
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := t.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theReportCacheShouldHoldEntries(quantity int) error {
	var reports []string
	for _, key := range mock.CachedKeys() {
		if strings.HasPrefix(key, "ecotrack:reports:") {
			reports = append(reports, key)
		}
	}
	if len(reports) != quantity {
		return fmt.Errorf("expected %d cached reports, got %d (%v)", quantity, len(reports), reports)
	}
	return nil
}

func getFieldValue(object map[string]any, dotSeparatedField string) any {
	var field any = object

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
