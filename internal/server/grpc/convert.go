package grpc

import (
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/dmitrijs2005/filekeeper/internal/proto"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

func toFileInfos(rows []*models.FileMetadata) []*pb.FileInfo {
	out := make([]*pb.FileInfo, len(rows))
	for i, r := range rows {
		out[i] = toFileInfo(r)
	}
	return out
}

func toFileInfo(r *models.FileMetadata) *pb.FileInfo {
	fi := &pb.FileInfo{
		Id:               r.ID,
		FileId:           r.FileID,
		RefType:          r.RefType,
		OriginalFileName: r.OriginalFileName,
		FileName:         r.FileName,
		FilePath:         r.FilePath,
		FileSize:         r.FileSize,
		FileType:         r.FileType,
		CreateUid:        r.CreateUID,
	}
	if r.RefID != nil {
		fi.RefId = wrapperspb.Int64(*r.RefID)
	}
	if r.Description != nil {
		fi.Description = wrapperspb.String(*r.Description)
	}
	if !r.CreateDate.IsZero() {
		fi.CreateDate = timestamppb.New(r.CreateDate)
	}
	return fi
}

func fromInt64Value(v *wrapperspb.Int64Value) *int64 {
	if v == nil {
		return nil
	}
	n := v.GetValue()
	return &n
}

func fromStringValue(v *wrapperspb.StringValue) *string {
	if v == nil {
		return nil
	}
	s := v.GetValue()
	return &s
}

// fromStruct yields the JSON-shaped map the record schemas validate: numbers
// arrive as float64, null as nil.
func fromStruct(s *structpb.Struct) models.Record {
	if len(s.GetFields()) == 0 {
		return nil
	}
	return models.Record(s.AsMap())
}
