package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type stubRekognition struct {
	out   *rekognition.DetectLabelsOutput
	err   error
	calls int
}

func (s *stubRekognition) DetectLabels(ctx context.Context, in *rekognition.DetectLabelsInput, _ ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error) {
	s.calls++
	return s.out, s.err
}

func label(name string, conf float32, boxes ...types.BoundingBox) types.Label {
	l := types.Label{Name: aws.String(name), Confidence: aws.Float32(conf)}
	for i := range boxes {
		l.Instances = append(l.Instances, types.Instance{BoundingBox: &boxes[i], Confidence: aws.Float32(conf)})
	}
	return l
}

func box(w, h float32) types.BoundingBox {
	return types.BoundingBox{Left: aws.Float32(0.1), Top: aws.Float32(0.2), Width: aws.Float32(w), Height: aws.Float32(h)}
}

func TestRekognitionObjectsMode(t *testing.T) {
	client := &stubRekognition{out: &rekognition.DetectLabelsOutput{Labels: []types.Label{
		label("Food", 99),
		label("Broccoli", 90, box(0.2, 0.2)),
		label("Apple", 80, box(0.5, 0.5), box(0.9, 0.9)),
		label("Table", 95, box(0.9, 0.9)),
	}}}
	svc := NewRekognitionService(client, 0)

	res, err := svc.Analyze(context.Background(), []byte{0xFF, 0xD8, 0xFF})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 1 {
		t.Errorf("expected a single DetectLabels call, got %d", client.calls)
	}
	if len(res.DetectedFoods) != 3 {
		t.Fatalf("expected 3 foods, got %+v", res.DetectedFoods)
	}

	want := []struct {
		name string
		qty  float64
	}{
		{"broccoli", 50},
		{"apple", 100},
		{"apple", 200},
	}
	for i, w := range want {
		f := res.DetectedFoods[i]
		if f.Name != w.name || f.EstimatedQuantity != w.qty {
			t.Errorf("food %d = %s/%v, want %s/%v", i, f.Name, f.EstimatedQuantity, w.name, w.qty)
		}
		if f.BoundingBox == nil {
			t.Errorf("food %d missing bounding box", i)
		}
	}
	if res.DetectedFoods[0].Confidence < 0.89 || res.DetectedFoods[0].Confidence > 0.91 {
		t.Errorf("confidence not scaled to 0..1: %v", res.DetectedFoods[0].Confidence)
	}
	// 34*0.5 + 52*1 + 52*2
	if res.TotalNutrition.Calories != 173 {
		t.Errorf("total calories = %v, want 173", res.TotalNutrition.Calories)
	}
}

func TestRekognitionFallsBackToLabels(t *testing.T) {
	client := &stubRekognition{out: &rekognition.DetectLabelsOutput{Labels: []types.Label{
		label("Food", 99),
		label("Seafood", 85),
		label("Rock", 70),
	}}}
	svc := NewRekognitionService(client, 0)

	res, err := svc.Analyze(context.Background(), []byte{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.DetectedFoods) != 1 || res.DetectedFoods[0].Name != "salmon" {
		t.Fatalf("expected salmon from label mode, got %+v", res.DetectedFoods)
	}
	if res.DetectedFoods[0].EstimatedQuantity != 100 || res.DetectedFoods[0].BoundingBox != nil {
		t.Errorf("label mode should use 100 g without box: %+v", res.DetectedFoods[0])
	}
}

func TestRekognitionNoFoods(t *testing.T) {
	client := &stubRekognition{out: &rekognition.DetectLabelsOutput{Labels: []types.Label{label("Car", 99)}}}
	res, err := NewRekognitionService(client, 0).Analyze(context.Background(), []byte{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.DetectedFoods) != 0 {
		t.Errorf("expected no foods, got %+v", res.DetectedFoods)
	}
	if res.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", res.Confidence)
	}
}

func TestRekognitionError(t *testing.T) {
	client := &stubRekognition{err: errors.New("throttled")}
	_, err := NewRekognitionService(client, 0).Analyze(context.Background(), []byte{1})
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestEstimatePortion(t *testing.T) {
	tests := []struct {
		box  *models.BoundingBox
		want float64
	}{
		{nil, 100},
		{&models.BoundingBox{Width: 0.2, Height: 0.2}, 50},
		{&models.BoundingBox{Width: 0.5, Height: 0.5}, 100},
		{&models.BoundingBox{Width: 0.7, Height: 0.7}, 150},
		{&models.BoundingBox{Width: 1, Height: 1}, 200},
	}
	for _, tt := range tests {
		if got := EstimatePortion(tt.box); got != tt.want {
			t.Errorf("EstimatePortion(%+v) = %v, want %v", tt.box, got, tt.want)
		}
	}
}
