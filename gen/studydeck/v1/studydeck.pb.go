// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: studydeck/v1/studydeck.proto

package studyv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Subject struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Subject) Reset() {
	*x = Subject{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Subject) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Subject) ProtoMessage() {}

func (x *Subject) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Subject.ProtoReflect.Descriptor instead.
func (*Subject) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{0}
}

func (x *Subject) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Subject) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Subject) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Subject) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Subject) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Subject) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Document struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SubjectId        string                 `protobuf:"bytes,2,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	Filename         string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Title            string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Status           string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	LowQualityText   bool                   `protobuf:"varint,6,opt,name=low_quality_text,json=lowQualityText,proto3" json:"low_quality_text,omitempty"`
	ExtractionMethod string                 `protobuf:"bytes,7,opt,name=extraction_method,json=extractionMethod,proto3" json:"extraction_method,omitempty"`
	PageCount        int32                  `protobuf:"varint,8,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	ExtractedPages   int32                  `protobuf:"varint,9,opt,name=extracted_pages,json=extractedPages,proto3" json:"extracted_pages,omitempty"`
	Author           string                 `protobuf:"bytes,10,opt,name=author,proto3" json:"author,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,11,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	UploadedAt       string                 `protobuf:"bytes,12,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	ProcessedAt      string                 `protobuf:"bytes,13,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{1}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetLowQualityText() bool {
	if x != nil {
		return x.LowQualityText
	}
	return false
}

func (x *Document) GetExtractionMethod() string {
	if x != nil {
		return x.ExtractionMethod
	}
	return ""
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetExtractedPages() int32 {
	if x != nil {
		return x.ExtractedPages
	}
	return 0
}

func (x *Document) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type Summary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Content       string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	ModelName     string                 `protobuf:"bytes,4,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	TotalTokens   int32                  `protobuf:"varint,5,opt,name=total_tokens,json=totalTokens,proto3" json:"total_tokens,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Summary) Reset() {
	*x = Summary{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Summary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Summary) ProtoMessage() {}

func (x *Summary) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Summary.ProtoReflect.Descriptor instead.
func (*Summary) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{2}
}

func (x *Summary) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Summary) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Summary) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Summary) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *Summary) GetTotalTokens() int32 {
	if x != nil {
		return x.TotalTokens
	}
	return 0
}

func (x *Summary) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Flashcard struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Subject       string                 `protobuf:"bytes,3,opt,name=subject,proto3" json:"subject,omitempty"`
	Definition    string                 `protobuf:"bytes,4,opt,name=definition,proto3" json:"definition,omitempty"`
	Position      int32                  `protobuf:"varint,5,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Flashcard) Reset() {
	*x = Flashcard{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Flashcard) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Flashcard) ProtoMessage() {}

func (x *Flashcard) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Flashcard.ProtoReflect.Descriptor instead.
func (*Flashcard) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{3}
}

func (x *Flashcard) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Flashcard) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Flashcard) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *Flashcard) GetDefinition() string {
	if x != nil {
		return x.Definition
	}
	return ""
}

func (x *Flashcard) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type QuizQuestion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	QuestionText  string                 `protobuf:"bytes,2,opt,name=question_text,json=questionText,proto3" json:"question_text,omitempty"`
	Options       []string               `protobuf:"bytes,3,rep,name=options,proto3" json:"options,omitempty"`
	CorrectOption string                 `protobuf:"bytes,4,opt,name=correct_option,json=correctOption,proto3" json:"correct_option,omitempty"`
	Position      int32                  `protobuf:"varint,5,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuizQuestion) Reset() {
	*x = QuizQuestion{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuizQuestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuizQuestion) ProtoMessage() {}

func (x *QuizQuestion) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuizQuestion.ProtoReflect.Descriptor instead.
func (*QuizQuestion) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{4}
}

func (x *QuizQuestion) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *QuizQuestion) GetQuestionText() string {
	if x != nil {
		return x.QuestionText
	}
	return ""
}

func (x *QuizQuestion) GetOptions() []string {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *QuizQuestion) GetCorrectOption() string {
	if x != nil {
		return x.CorrectOption
	}
	return ""
}

func (x *QuizQuestion) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type Quiz struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Questions     []*QuizQuestion        `protobuf:"bytes,4,rep,name=questions,proto3" json:"questions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Quiz) Reset() {
	*x = Quiz{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Quiz) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Quiz) ProtoMessage() {}

func (x *Quiz) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Quiz.ProtoReflect.Descriptor instead.
func (*Quiz) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{5}
}

func (x *Quiz) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Quiz) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Quiz) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Quiz) GetQuestions() []*QuizQuestion {
	if x != nil {
		return x.Questions
	}
	return nil
}

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Role          string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	Content       string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{6}
}

func (x *ChatMessage) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ChatMessage) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ChatMessage) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ChatMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ChatMessage) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateSubjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSubjectRequest) Reset() {
	*x = CreateSubjectRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSubjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSubjectRequest) ProtoMessage() {}

func (x *CreateSubjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSubjectRequest.ProtoReflect.Descriptor instead.
func (*CreateSubjectRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{7}
}

func (x *CreateSubjectRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CreateSubjectRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateSubjectRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CreateSubjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subject       *Subject               `protobuf:"bytes,1,opt,name=subject,proto3" json:"subject,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSubjectResponse) Reset() {
	*x = CreateSubjectResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSubjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSubjectResponse) ProtoMessage() {}

func (x *CreateSubjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSubjectResponse.ProtoReflect.Descriptor instead.
func (*CreateSubjectResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{8}
}

func (x *CreateSubjectResponse) GetSubject() *Subject {
	if x != nil {
		return x.Subject
	}
	return nil
}

type ListSubjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubjectsRequest) Reset() {
	*x = ListSubjectsRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubjectsRequest) ProtoMessage() {}

func (x *ListSubjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubjectsRequest.ProtoReflect.Descriptor instead.
func (*ListSubjectsRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{9}
}

func (x *ListSubjectsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ListSubjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subjects      []*Subject             `protobuf:"bytes,1,rep,name=subjects,proto3" json:"subjects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubjectsResponse) Reset() {
	*x = ListSubjectsResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubjectsResponse) ProtoMessage() {}

func (x *ListSubjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubjectsResponse.ProtoReflect.Descriptor instead.
func (*ListSubjectsResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{10}
}

func (x *ListSubjectsResponse) GetSubjects() []*Subject {
	if x != nil {
		return x.Subjects
	}
	return nil
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	SubjectId     string                 `protobuf:"bytes,2,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{11}
}

func (x *UploadDocumentRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *UploadDocumentRequest) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Queued        bool                   `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{12}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *UploadDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{13}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{14}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SubjectId     string                 `protobuf:"bytes,1,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{15}
}

func (x *ListDocumentsRequest) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{16}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GenerateStudySetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Force         bool                   `protobuf:"varint,2,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateStudySetRequest) Reset() {
	*x = GenerateStudySetRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateStudySetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateStudySetRequest) ProtoMessage() {}

func (x *GenerateStudySetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateStudySetRequest.ProtoReflect.Descriptor instead.
func (*GenerateStudySetRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{17}
}

func (x *GenerateStudySetRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GenerateStudySetRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type GenerateStudySetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        bool                   `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateStudySetResponse) Reset() {
	*x = GenerateStudySetResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateStudySetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateStudySetResponse) ProtoMessage() {}

func (x *GenerateStudySetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateStudySetResponse.ProtoReflect.Descriptor instead.
func (*GenerateStudySetResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{18}
}

func (x *GenerateStudySetResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

func (x *GenerateStudySetResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetStudySetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStudySetRequest) Reset() {
	*x = GetStudySetRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStudySetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStudySetRequest) ProtoMessage() {}

func (x *GetStudySetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStudySetRequest.ProtoReflect.Descriptor instead.
func (*GetStudySetRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{19}
}

func (x *GetStudySetRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetStudySetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       *Summary               `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	Flashcards    []*Flashcard           `protobuf:"bytes,2,rep,name=flashcards,proto3" json:"flashcards,omitempty"`
	Quiz          *Quiz                  `protobuf:"bytes,3,opt,name=quiz,proto3" json:"quiz,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStudySetResponse) Reset() {
	*x = GetStudySetResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStudySetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStudySetResponse) ProtoMessage() {}

func (x *GetStudySetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStudySetResponse.ProtoReflect.Descriptor instead.
func (*GetStudySetResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{20}
}

func (x *GetStudySetResponse) GetSummary() *Summary {
	if x != nil {
		return x.Summary
	}
	return nil
}

func (x *GetStudySetResponse) GetFlashcards() []*Flashcard {
	if x != nil {
		return x.Flashcards
	}
	return nil
}

func (x *GetStudySetResponse) GetQuiz() *Quiz {
	if x != nil {
		return x.Quiz
	}
	return nil
}

type ChatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatRequest) Reset() {
	*x = ChatRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatRequest) ProtoMessage() {}

func (x *ChatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatRequest.ProtoReflect.Descriptor instead.
func (*ChatRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{21}
}

func (x *ChatRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ChatRequest) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ChatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Answer        string                 `protobuf:"bytes,1,opt,name=answer,proto3" json:"answer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatResponse) Reset() {
	*x = ChatResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatResponse) ProtoMessage() {}

func (x *ChatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatResponse.ProtoReflect.Descriptor instead.
func (*ChatResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{22}
}

func (x *ChatResponse) GetAnswer() string {
	if x != nil {
		return x.Answer
	}
	return ""
}

type GetChatHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetChatHistoryRequest) Reset() {
	*x = GetChatHistoryRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChatHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChatHistoryRequest) ProtoMessage() {}

func (x *GetChatHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetChatHistoryRequest.ProtoReflect.Descriptor instead.
func (*GetChatHistoryRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{23}
}

func (x *GetChatHistoryRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetChatHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*ChatMessage         `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetChatHistoryResponse) Reset() {
	*x = GetChatHistoryResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChatHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChatHistoryResponse) ProtoMessage() {}

func (x *GetChatHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetChatHistoryResponse.ProtoReflect.Descriptor instead.
func (*GetChatHistoryResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{24}
}

func (x *GetChatHistoryResponse) GetMessages() []*ChatMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

type ExportStudySetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStudySetRequest) Reset() {
	*x = ExportStudySetRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStudySetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStudySetRequest) ProtoMessage() {}

func (x *ExportStudySetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStudySetRequest.ProtoReflect.Descriptor instead.
func (*ExportStudySetRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{25}
}

func (x *ExportStudySetRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ExportStudySetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStudySetResponse) Reset() {
	*x = ExportStudySetResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStudySetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStudySetResponse) ProtoMessage() {}

func (x *ExportStudySetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStudySetResponse.ProtoReflect.Descriptor instead.
func (*ExportStudySetResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{26}
}

func (x *ExportStudySetResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type QuizAttempt struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	QuizId           string                 `protobuf:"bytes,2,opt,name=quiz_id,json=quizId,proto3" json:"quiz_id,omitempty"`
	OwnerId          string                 `protobuf:"bytes,3,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	TotalQuestions   int32                  `protobuf:"varint,4,opt,name=total_questions,json=totalQuestions,proto3" json:"total_questions,omitempty"`
	CorrectAnswers   int32                  `protobuf:"varint,5,opt,name=correct_answers,json=correctAnswers,proto3" json:"correct_answers,omitempty"`
	Score            float64                `protobuf:"fixed64,6,opt,name=score,proto3" json:"score,omitempty"`
	TimeTakenSeconds int32                  `protobuf:"varint,7,opt,name=time_taken_seconds,json=timeTakenSeconds,proto3" json:"time_taken_seconds,omitempty"`
	CompletedAt      string                 `protobuf:"bytes,8,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *QuizAttempt) Reset() {
	*x = QuizAttempt{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuizAttempt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuizAttempt) ProtoMessage() {}

func (x *QuizAttempt) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuizAttempt.ProtoReflect.Descriptor instead.
func (*QuizAttempt) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{27}
}

func (x *QuizAttempt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *QuizAttempt) GetQuizId() string {
	if x != nil {
		return x.QuizId
	}
	return ""
}

func (x *QuizAttempt) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *QuizAttempt) GetTotalQuestions() int32 {
	if x != nil {
		return x.TotalQuestions
	}
	return 0
}

func (x *QuizAttempt) GetCorrectAnswers() int32 {
	if x != nil {
		return x.CorrectAnswers
	}
	return 0
}

func (x *QuizAttempt) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *QuizAttempt) GetTimeTakenSeconds() int32 {
	if x != nil {
		return x.TimeTakenSeconds
	}
	return 0
}

func (x *QuizAttempt) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type QuizAnswerSubmission struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	QuestionId     string                 `protobuf:"bytes,1,opt,name=question_id,json=questionId,proto3" json:"question_id,omitempty"`
	SelectedOption string                 `protobuf:"bytes,2,opt,name=selected_option,json=selectedOption,proto3" json:"selected_option,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *QuizAnswerSubmission) Reset() {
	*x = QuizAnswerSubmission{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuizAnswerSubmission) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuizAnswerSubmission) ProtoMessage() {}

func (x *QuizAnswerSubmission) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuizAnswerSubmission.ProtoReflect.Descriptor instead.
func (*QuizAnswerSubmission) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{28}
}

func (x *QuizAnswerSubmission) GetQuestionId() string {
	if x != nil {
		return x.QuestionId
	}
	return ""
}

func (x *QuizAnswerSubmission) GetSelectedOption() string {
	if x != nil {
		return x.SelectedOption
	}
	return ""
}

type RecordQuizAttemptRequest struct {
	state            protoimpl.MessageState  `protogen:"open.v1"`
	OwnerId          string                  `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	QuizId           string                  `protobuf:"bytes,2,opt,name=quiz_id,json=quizId,proto3" json:"quiz_id,omitempty"`
	Answers          []*QuizAnswerSubmission `protobuf:"bytes,3,rep,name=answers,proto3" json:"answers,omitempty"`
	TimeTakenSeconds int32                   `protobuf:"varint,4,opt,name=time_taken_seconds,json=timeTakenSeconds,proto3" json:"time_taken_seconds,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RecordQuizAttemptRequest) Reset() {
	*x = RecordQuizAttemptRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordQuizAttemptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordQuizAttemptRequest) ProtoMessage() {}

func (x *RecordQuizAttemptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordQuizAttemptRequest.ProtoReflect.Descriptor instead.
func (*RecordQuizAttemptRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{29}
}

func (x *RecordQuizAttemptRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *RecordQuizAttemptRequest) GetQuizId() string {
	if x != nil {
		return x.QuizId
	}
	return ""
}

func (x *RecordQuizAttemptRequest) GetAnswers() []*QuizAnswerSubmission {
	if x != nil {
		return x.Answers
	}
	return nil
}

func (x *RecordQuizAttemptRequest) GetTimeTakenSeconds() int32 {
	if x != nil {
		return x.TimeTakenSeconds
	}
	return 0
}

type RecordQuizAttemptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Attempt       *QuizAttempt           `protobuf:"bytes,1,opt,name=attempt,proto3" json:"attempt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordQuizAttemptResponse) Reset() {
	*x = RecordQuizAttemptResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordQuizAttemptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordQuizAttemptResponse) ProtoMessage() {}

func (x *RecordQuizAttemptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordQuizAttemptResponse.ProtoReflect.Descriptor instead.
func (*RecordQuizAttemptResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{30}
}

func (x *RecordQuizAttemptResponse) GetAttempt() *QuizAttempt {
	if x != nil {
		return x.Attempt
	}
	return nil
}

type GetUserStatisticsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserStatisticsRequest) Reset() {
	*x = GetUserStatisticsRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserStatisticsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserStatisticsRequest) ProtoMessage() {}

func (x *GetUserStatisticsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserStatisticsRequest.ProtoReflect.Descriptor instead.
func (*GetUserStatisticsRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{31}
}

func (x *GetUserStatisticsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type GetUserStatisticsResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	TotalQuizzes     int32                  `protobuf:"varint,1,opt,name=total_quizzes,json=totalQuizzes,proto3" json:"total_quizzes,omitempty"`
	AverageScore     float64                `protobuf:"fixed64,2,opt,name=average_score,json=averageScore,proto3" json:"average_score,omitempty"`
	TotalTimeSeconds int32                  `protobuf:"varint,3,opt,name=total_time_seconds,json=totalTimeSeconds,proto3" json:"total_time_seconds,omitempty"`
	BestScore        float64                `protobuf:"fixed64,4,opt,name=best_score,json=bestScore,proto3" json:"best_score,omitempty"`
	WorstScore       float64                `protobuf:"fixed64,5,opt,name=worst_score,json=worstScore,proto3" json:"worst_score,omitempty"`
	RecentAttempts   []*QuizAttempt         `protobuf:"bytes,6,rep,name=recent_attempts,json=recentAttempts,proto3" json:"recent_attempts,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetUserStatisticsResponse) Reset() {
	*x = GetUserStatisticsResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserStatisticsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserStatisticsResponse) ProtoMessage() {}

func (x *GetUserStatisticsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserStatisticsResponse.ProtoReflect.Descriptor instead.
func (*GetUserStatisticsResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{32}
}

func (x *GetUserStatisticsResponse) GetTotalQuizzes() int32 {
	if x != nil {
		return x.TotalQuizzes
	}
	return 0
}

func (x *GetUserStatisticsResponse) GetAverageScore() float64 {
	if x != nil {
		return x.AverageScore
	}
	return 0
}

func (x *GetUserStatisticsResponse) GetTotalTimeSeconds() int32 {
	if x != nil {
		return x.TotalTimeSeconds
	}
	return 0
}

func (x *GetUserStatisticsResponse) GetBestScore() float64 {
	if x != nil {
		return x.BestScore
	}
	return 0
}

func (x *GetUserStatisticsResponse) GetWorstScore() float64 {
	if x != nil {
		return x.WorstScore
	}
	return 0
}

func (x *GetUserStatisticsResponse) GetRecentAttempts() []*QuizAttempt {
	if x != nil {
		return x.RecentAttempts
	}
	return nil
}

type GetQuizStatisticsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuizId        string                 `protobuf:"bytes,1,opt,name=quiz_id,json=quizId,proto3" json:"quiz_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuizStatisticsRequest) Reset() {
	*x = GetQuizStatisticsRequest{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuizStatisticsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuizStatisticsRequest) ProtoMessage() {}

func (x *GetQuizStatisticsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuizStatisticsRequest.ProtoReflect.Descriptor instead.
func (*GetQuizStatisticsRequest) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{33}
}

func (x *GetQuizStatisticsRequest) GetQuizId() string {
	if x != nil {
		return x.QuizId
	}
	return ""
}

type DifficultQuestion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuestionId    string                 `protobuf:"bytes,1,opt,name=question_id,json=questionId,proto3" json:"question_id,omitempty"`
	QuestionText  string                 `protobuf:"bytes,2,opt,name=question_text,json=questionText,proto3" json:"question_text,omitempty"`
	ErrorRate     float64                `protobuf:"fixed64,3,opt,name=error_rate,json=errorRate,proto3" json:"error_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DifficultQuestion) Reset() {
	*x = DifficultQuestion{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DifficultQuestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DifficultQuestion) ProtoMessage() {}

func (x *DifficultQuestion) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DifficultQuestion.ProtoReflect.Descriptor instead.
func (*DifficultQuestion) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{34}
}

func (x *DifficultQuestion) GetQuestionId() string {
	if x != nil {
		return x.QuestionId
	}
	return ""
}

func (x *DifficultQuestion) GetQuestionText() string {
	if x != nil {
		return x.QuestionText
	}
	return ""
}

func (x *DifficultQuestion) GetErrorRate() float64 {
	if x != nil {
		return x.ErrorRate
	}
	return 0
}

type GetQuizStatisticsResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	TotalAttempts      int32                  `protobuf:"varint,1,opt,name=total_attempts,json=totalAttempts,proto3" json:"total_attempts,omitempty"`
	AverageScore       float64                `protobuf:"fixed64,2,opt,name=average_score,json=averageScore,proto3" json:"average_score,omitempty"`
	PassRate           float64                `protobuf:"fixed64,3,opt,name=pass_rate,json=passRate,proto3" json:"pass_rate,omitempty"`
	DifficultQuestions []*DifficultQuestion   `protobuf:"bytes,4,rep,name=difficult_questions,json=difficultQuestions,proto3" json:"difficult_questions,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetQuizStatisticsResponse) Reset() {
	*x = GetQuizStatisticsResponse{}
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuizStatisticsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuizStatisticsResponse) ProtoMessage() {}

func (x *GetQuizStatisticsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studydeck_v1_studydeck_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuizStatisticsResponse.ProtoReflect.Descriptor instead.
func (*GetQuizStatisticsResponse) Descriptor() ([]byte, []int) {
	return file_studydeck_v1_studydeck_proto_rawDescGZIP(), []int{35}
}

func (x *GetQuizStatisticsResponse) GetTotalAttempts() int32 {
	if x != nil {
		return x.TotalAttempts
	}
	return 0
}

func (x *GetQuizStatisticsResponse) GetAverageScore() float64 {
	if x != nil {
		return x.AverageScore
	}
	return 0
}

func (x *GetQuizStatisticsResponse) GetPassRate() float64 {
	if x != nil {
		return x.PassRate
	}
	return 0
}

func (x *GetQuizStatisticsResponse) GetDifficultQuestions() []*DifficultQuestion {
	if x != nil {
		return x.DifficultQuestions
	}
	return nil
}

var File_studydeck_v1_studydeck_proto protoreflect.FileDescriptor

const file_studydeck_v1_studydeck_proto_rawDesc = "" +
	"\n" +
	"\x1cstudydeck/v1/studydeck.proto\x12\fstudydeck.v1\"\xa8\x01\n" +
	"\aSubject\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xa3\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x02 \x01(\tR\tsubjectId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12(\n" +
	"\x10low_quality_text\x18\x06 \x01(\bR\x0elowQualityText\x12+\n" +
	"\x11extraction_method\x18\a \x01(\tR\x10extractionMethod\x12\x1d\n" +
	"\n" +
	"page_count\x18\b \x01(\x05R\tpageCount\x12'\n" +
	"\x0fextracted_pages\x18\t \x01(\x05R\x0eextractedPages\x12\x16\n" +
	"\x06author\x18\n" +
	" \x01(\tR\x06author\x12#\n" +
	"\rerror_message\x18\v \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vuploaded_at\x18\f \x01(\tR\n" +
	"uploadedAt\x12!\n" +
	"\fprocessed_at\x18\r \x01(\tR\vprocessedAt\"\xb5\x01\n" +
	"\aSummary\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\x12\x1d\n" +
	"\n" +
	"model_name\x18\x04 \x01(\tR\tmodelName\x12!\n" +
	"\ftotal_tokens\x18\x05 \x01(\x05R\vtotalTokens\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"\x92\x01\n" +
	"\tFlashcard\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x18\n" +
	"\asubject\x18\x03 \x01(\tR\asubject\x12\x1e\n" +
	"\n" +
	"definition\x18\x04 \x01(\tR\n" +
	"definition\x12\x1a\n" +
	"\bposition\x18\x05 \x01(\x05R\bposition\"\xa0\x01\n" +
	"\fQuizQuestion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rquestion_text\x18\x02 \x01(\tR\fquestionText\x12\x18\n" +
	"\aoptions\x18\x03 \x03(\tR\aoptions\x12%\n" +
	"\x0ecorrect_option\x18\x04 \x01(\tR\rcorrectOption\x12\x1a\n" +
	"\bposition\x18\x05 \x01(\x05R\bposition\"\x87\x01\n" +
	"\x04Quiz\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x128\n" +
	"\tquestions\x18\x04 \x03(\v2\x1a.studydeck.v1.QuizQuestionR\tquestions\"\x8b\x01\n" +
	"\vChatMessage\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\x12\x18\n" +
	"\acontent\x18\x04 \x01(\tR\acontent\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"g\n" +
	"\x14CreateSubjectRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"H\n" +
	"\x15CreateSubjectResponse\x12/\n" +
	"\asubject\x18\x01 \x01(\v2\x15.studydeck.v1.SubjectR\asubject\"0\n" +
	"\x13ListSubjectsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"I\n" +
	"\x14ListSubjectsResponse\x121\n" +
	"\bsubjects\x18\x01 \x03(\v2\x15.studydeck.v1.SubjectR\bsubjects\"\x87\x01\n" +
	"\x15UploadDocumentRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x02 \x01(\tR\tsubjectId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"d\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.studydeck.v1.DocumentR\bdocument\x12\x16\n" +
	"\x06queued\x18\x02 \x01(\bR\x06queued\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"I\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.studydeck.v1.DocumentR\bdocument\"5\n" +
	"\x14ListDocumentsRequest\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x01 \x01(\tR\tsubjectId\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.studydeck.v1.DocumentR\tdocuments\"P\n" +
	"\x17GenerateStudySetRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05force\x18\x02 \x01(\bR\x05force\"J\n" +
	"\x18GenerateStudySetResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"5\n" +
	"\x12GetStudySetRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xa7\x01\n" +
	"\x13GetStudySetResponse\x12/\n" +
	"\asummary\x18\x01 \x01(\v2\x15.studydeck.v1.SummaryR\asummary\x127\n" +
	"\n" +
	"flashcards\x18\x02 \x03(\v2\x17.studydeck.v1.FlashcardR\n" +
	"flashcards\x12&\n" +
	"\x04quiz\x18\x03 \x01(\v2\x12.studydeck.v1.QuizR\x04quiz\"H\n" +
	"\vChatRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"&\n" +
	"\fChatResponse\x12\x16\n" +
	"\x06answer\x18\x01 \x01(\tR\x06answer\"8\n" +
	"\x15GetChatHistoryRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"O\n" +
	"\x16GetChatHistoryResponse\x125\n" +
	"\bmessages\x18\x01 \x03(\v2\x19.studydeck.v1.ChatMessageR\bmessages\"8\n" +
	"\x15ExportStudySetRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\",\n" +
	"\x16ExportStudySetResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x8a\x02\n" +
	"\vQuizAttempt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\aquiz_id\x18\x02 \x01(\tR\x06quizId\x12\x19\n" +
	"\bowner_id\x18\x03 \x01(\tR\aownerId\x12'\n" +
	"\x0ftotal_questions\x18\x04 \x01(\x05R\x0etotalQuestions\x12'\n" +
	"\x0fcorrect_answers\x18\x05 \x01(\x05R\x0ecorrectAnswers\x12\x14\n" +
	"\x05score\x18\x06 \x01(\x01R\x05score\x12,\n" +
	"\x12time_taken_seconds\x18\a \x01(\x05R\x10timeTakenSeconds\x12!\n" +
	"\fcompleted_at\x18\b \x01(\tR\vcompletedAt\"`\n" +
	"\x14QuizAnswerSubmission\x12\x1f\n" +
	"\vquestion_id\x18\x01 \x01(\tR\n" +
	"questionId\x12'\n" +
	"\x0fselected_option\x18\x02 \x01(\tR\x0eselectedOption\"\xba\x01\n" +
	"\x18RecordQuizAttemptRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x17\n" +
	"\aquiz_id\x18\x02 \x01(\tR\x06quizId\x12<\n" +
	"\aanswers\x18\x03 \x03(\v2\".studydeck.v1.QuizAnswerSubmissionR\aanswers\x12,\n" +
	"\x12time_taken_seconds\x18\x04 \x01(\x05R\x10timeTakenSeconds\"P\n" +
	"\x19RecordQuizAttemptResponse\x123\n" +
	"\aattempt\x18\x01 \x01(\v2\x19.studydeck.v1.QuizAttemptR\aattempt\"5\n" +
	"\x18GetUserStatisticsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"\x97\x02\n" +
	"\x19GetUserStatisticsResponse\x12#\n" +
	"\rtotal_quizzes\x18\x01 \x01(\x05R\ftotalQuizzes\x12#\n" +
	"\raverage_score\x18\x02 \x01(\x01R\faverageScore\x12,\n" +
	"\x12total_time_seconds\x18\x03 \x01(\x05R\x10totalTimeSeconds\x12\x1d\n" +
	"\n" +
	"best_score\x18\x04 \x01(\x01R\tbestScore\x12\x1f\n" +
	"\vworst_score\x18\x05 \x01(\x01R\n" +
	"worstScore\x12B\n" +
	"\x0frecent_attempts\x18\x06 \x03(\v2\x19.studydeck.v1.QuizAttemptR\x0erecentAttempts\"3\n" +
	"\x18GetQuizStatisticsRequest\x12\x17\n" +
	"\aquiz_id\x18\x01 \x01(\tR\x06quizId\"x\n" +
	"\x11DifficultQuestion\x12\x1f\n" +
	"\vquestion_id\x18\x01 \x01(\tR\n" +
	"questionId\x12#\n" +
	"\rquestion_text\x18\x02 \x01(\tR\fquestionText\x12\x1d\n" +
	"\n" +
	"error_rate\x18\x03 \x01(\x01R\terrorRate\"\xd6\x01\n" +
	"\x19GetQuizStatisticsResponse\x12%\n" +
	"\x0etotal_attempts\x18\x01 \x01(\x05R\rtotalAttempts\x12#\n" +
	"\raverage_score\x18\x02 \x01(\x01R\faverageScore\x12\x1b\n" +
	"\tpass_rate\x18\x03 \x01(\x01R\bpassRate\x12P\n" +
	"\x13difficult_questions\x18\x04 \x03(\v2\x1f.studydeck.v1.DifficultQuestionR\x12difficultQuestions2\xac\t\n" +
	"\fStudyService\x12X\n" +
	"\rCreateSubject\x12\".studydeck.v1.CreateSubjectRequest\x1a#.studydeck.v1.CreateSubjectResponse\x12U\n" +
	"\fListSubjects\x12!.studydeck.v1.ListSubjectsRequest\x1a\".studydeck.v1.ListSubjectsResponse\x12[\n" +
	"\x0eUploadDocument\x12#.studydeck.v1.UploadDocumentRequest\x1a$.studydeck.v1.UploadDocumentResponse\x12R\n" +
	"\vGetDocument\x12 .studydeck.v1.GetDocumentRequest\x1a!.studydeck.v1.GetDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".studydeck.v1.ListDocumentsRequest\x1a#.studydeck.v1.ListDocumentsResponse\x12a\n" +
	"\x10GenerateStudySet\x12%.studydeck.v1.GenerateStudySetRequest\x1a&.studydeck.v1.GenerateStudySetResponse\x12R\n" +
	"\vGetStudySet\x12 .studydeck.v1.GetStudySetRequest\x1a!.studydeck.v1.GetStudySetResponse\x12=\n" +
	"\x04Chat\x12\x19.studydeck.v1.ChatRequest\x1a\x1a.studydeck.v1.ChatResponse\x12[\n" +
	"\x0eGetChatHistory\x12#.studydeck.v1.GetChatHistoryRequest\x1a$.studydeck.v1.GetChatHistoryResponse\x12[\n" +
	"\x0eExportStudySet\x12#.studydeck.v1.ExportStudySetRequest\x1a$.studydeck.v1.ExportStudySetResponse\x12d\n" +
	"\x11RecordQuizAttempt\x12&.studydeck.v1.RecordQuizAttemptRequest\x1a'.studydeck.v1.RecordQuizAttemptResponse\x12d\n" +
	"\x11GetUserStatistics\x12&.studydeck.v1.GetUserStatisticsRequest\x1a'.studydeck.v1.GetUserStatisticsResponse\x12d\n" +
	"\x11GetQuizStatistics\x12&.studydeck.v1.GetQuizStatisticsRequest\x1a'.studydeck.v1.GetQuizStatisticsResponseB$Z\"studydeck/gen/studydeck/v1;studyv1b\x06proto3"

var (
	file_studydeck_v1_studydeck_proto_rawDescOnce sync.Once
	file_studydeck_v1_studydeck_proto_rawDescData []byte
)

func file_studydeck_v1_studydeck_proto_rawDescGZIP() []byte {
	file_studydeck_v1_studydeck_proto_rawDescOnce.Do(func() {
		file_studydeck_v1_studydeck_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_studydeck_v1_studydeck_proto_rawDesc), len(file_studydeck_v1_studydeck_proto_rawDesc)))
	})
	return file_studydeck_v1_studydeck_proto_rawDescData
}

var file_studydeck_v1_studydeck_proto_msgTypes = make([]protoimpl.MessageInfo, 36)
var file_studydeck_v1_studydeck_proto_goTypes = []any{
	(*Subject)(nil),                   // 0: studydeck.v1.Subject
	(*Document)(nil),                  // 1: studydeck.v1.Document
	(*Summary)(nil),                   // 2: studydeck.v1.Summary
	(*Flashcard)(nil),                 // 3: studydeck.v1.Flashcard
	(*QuizQuestion)(nil),              // 4: studydeck.v1.QuizQuestion
	(*Quiz)(nil),                      // 5: studydeck.v1.Quiz
	(*ChatMessage)(nil),               // 6: studydeck.v1.ChatMessage
	(*CreateSubjectRequest)(nil),      // 7: studydeck.v1.CreateSubjectRequest
	(*CreateSubjectResponse)(nil),     // 8: studydeck.v1.CreateSubjectResponse
	(*ListSubjectsRequest)(nil),       // 9: studydeck.v1.ListSubjectsRequest
	(*ListSubjectsResponse)(nil),      // 10: studydeck.v1.ListSubjectsResponse
	(*UploadDocumentRequest)(nil),     // 11: studydeck.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),    // 12: studydeck.v1.UploadDocumentResponse
	(*GetDocumentRequest)(nil),        // 13: studydeck.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),       // 14: studydeck.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),      // 15: studydeck.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),     // 16: studydeck.v1.ListDocumentsResponse
	(*GenerateStudySetRequest)(nil),   // 17: studydeck.v1.GenerateStudySetRequest
	(*GenerateStudySetResponse)(nil),  // 18: studydeck.v1.GenerateStudySetResponse
	(*GetStudySetRequest)(nil),        // 19: studydeck.v1.GetStudySetRequest
	(*GetStudySetResponse)(nil),       // 20: studydeck.v1.GetStudySetResponse
	(*ChatRequest)(nil),               // 21: studydeck.v1.ChatRequest
	(*ChatResponse)(nil),              // 22: studydeck.v1.ChatResponse
	(*GetChatHistoryRequest)(nil),     // 23: studydeck.v1.GetChatHistoryRequest
	(*GetChatHistoryResponse)(nil),    // 24: studydeck.v1.GetChatHistoryResponse
	(*ExportStudySetRequest)(nil),     // 25: studydeck.v1.ExportStudySetRequest
	(*ExportStudySetResponse)(nil),    // 26: studydeck.v1.ExportStudySetResponse
	(*QuizAttempt)(nil),               // 27: studydeck.v1.QuizAttempt
	(*QuizAnswerSubmission)(nil),      // 28: studydeck.v1.QuizAnswerSubmission
	(*RecordQuizAttemptRequest)(nil),  // 29: studydeck.v1.RecordQuizAttemptRequest
	(*RecordQuizAttemptResponse)(nil), // 30: studydeck.v1.RecordQuizAttemptResponse
	(*GetUserStatisticsRequest)(nil),  // 31: studydeck.v1.GetUserStatisticsRequest
	(*GetUserStatisticsResponse)(nil), // 32: studydeck.v1.GetUserStatisticsResponse
	(*GetQuizStatisticsRequest)(nil),  // 33: studydeck.v1.GetQuizStatisticsRequest
	(*DifficultQuestion)(nil),         // 34: studydeck.v1.DifficultQuestion
	(*GetQuizStatisticsResponse)(nil), // 35: studydeck.v1.GetQuizStatisticsResponse
}
var file_studydeck_v1_studydeck_proto_depIdxs = []int32{
	4,  // 0: studydeck.v1.Quiz.questions:type_name -> studydeck.v1.QuizQuestion
	0,  // 1: studydeck.v1.CreateSubjectResponse.subject:type_name -> studydeck.v1.Subject
	0,  // 2: studydeck.v1.ListSubjectsResponse.subjects:type_name -> studydeck.v1.Subject
	1,  // 3: studydeck.v1.UploadDocumentResponse.document:type_name -> studydeck.v1.Document
	1,  // 4: studydeck.v1.GetDocumentResponse.document:type_name -> studydeck.v1.Document
	1,  // 5: studydeck.v1.ListDocumentsResponse.documents:type_name -> studydeck.v1.Document
	2,  // 6: studydeck.v1.GetStudySetResponse.summary:type_name -> studydeck.v1.Summary
	3,  // 7: studydeck.v1.GetStudySetResponse.flashcards:type_name -> studydeck.v1.Flashcard
	5,  // 8: studydeck.v1.GetStudySetResponse.quiz:type_name -> studydeck.v1.Quiz
	6,  // 9: studydeck.v1.GetChatHistoryResponse.messages:type_name -> studydeck.v1.ChatMessage
	28, // 10: studydeck.v1.RecordQuizAttemptRequest.answers:type_name -> studydeck.v1.QuizAnswerSubmission
	27, // 11: studydeck.v1.RecordQuizAttemptResponse.attempt:type_name -> studydeck.v1.QuizAttempt
	27, // 12: studydeck.v1.GetUserStatisticsResponse.recent_attempts:type_name -> studydeck.v1.QuizAttempt
	34, // 13: studydeck.v1.GetQuizStatisticsResponse.difficult_questions:type_name -> studydeck.v1.DifficultQuestion
	7,  // 14: studydeck.v1.StudyService.CreateSubject:input_type -> studydeck.v1.CreateSubjectRequest
	9,  // 15: studydeck.v1.StudyService.ListSubjects:input_type -> studydeck.v1.ListSubjectsRequest
	11, // 16: studydeck.v1.StudyService.UploadDocument:input_type -> studydeck.v1.UploadDocumentRequest
	13, // 17: studydeck.v1.StudyService.GetDocument:input_type -> studydeck.v1.GetDocumentRequest
	15, // 18: studydeck.v1.StudyService.ListDocuments:input_type -> studydeck.v1.ListDocumentsRequest
	17, // 19: studydeck.v1.StudyService.GenerateStudySet:input_type -> studydeck.v1.GenerateStudySetRequest
	19, // 20: studydeck.v1.StudyService.GetStudySet:input_type -> studydeck.v1.GetStudySetRequest
	21, // 21: studydeck.v1.StudyService.Chat:input_type -> studydeck.v1.ChatRequest
	23, // 22: studydeck.v1.StudyService.GetChatHistory:input_type -> studydeck.v1.GetChatHistoryRequest
	25, // 23: studydeck.v1.StudyService.ExportStudySet:input_type -> studydeck.v1.ExportStudySetRequest
	29, // 24: studydeck.v1.StudyService.RecordQuizAttempt:input_type -> studydeck.v1.RecordQuizAttemptRequest
	31, // 25: studydeck.v1.StudyService.GetUserStatistics:input_type -> studydeck.v1.GetUserStatisticsRequest
	33, // 26: studydeck.v1.StudyService.GetQuizStatistics:input_type -> studydeck.v1.GetQuizStatisticsRequest
	8,  // 27: studydeck.v1.StudyService.CreateSubject:output_type -> studydeck.v1.CreateSubjectResponse
	10, // 28: studydeck.v1.StudyService.ListSubjects:output_type -> studydeck.v1.ListSubjectsResponse
	12, // 29: studydeck.v1.StudyService.UploadDocument:output_type -> studydeck.v1.UploadDocumentResponse
	14, // 30: studydeck.v1.StudyService.GetDocument:output_type -> studydeck.v1.GetDocumentResponse
	16, // 31: studydeck.v1.StudyService.ListDocuments:output_type -> studydeck.v1.ListDocumentsResponse
	18, // 32: studydeck.v1.StudyService.GenerateStudySet:output_type -> studydeck.v1.GenerateStudySetResponse
	20, // 33: studydeck.v1.StudyService.GetStudySet:output_type -> studydeck.v1.GetStudySetResponse
	22, // 34: studydeck.v1.StudyService.Chat:output_type -> studydeck.v1.ChatResponse
	24, // 35: studydeck.v1.StudyService.GetChatHistory:output_type -> studydeck.v1.GetChatHistoryResponse
	26, // 36: studydeck.v1.StudyService.ExportStudySet:output_type -> studydeck.v1.ExportStudySetResponse
	30, // 37: studydeck.v1.StudyService.RecordQuizAttempt:output_type -> studydeck.v1.RecordQuizAttemptResponse
	32, // 38: studydeck.v1.StudyService.GetUserStatistics:output_type -> studydeck.v1.GetUserStatisticsResponse
	35, // 39: studydeck.v1.StudyService.GetQuizStatistics:output_type -> studydeck.v1.GetQuizStatisticsResponse
	27, // [27:40] is the sub-list for method output_type
	14, // [14:27] is the sub-list for method input_type
	14, // [14:14] is the sub-list for extension type_name
	14, // [14:14] is the sub-list for extension extendee
	0,  // [0:14] is the sub-list for field type_name
}

func init() { file_studydeck_v1_studydeck_proto_init() }
func file_studydeck_v1_studydeck_proto_init() {
	if File_studydeck_v1_studydeck_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_studydeck_v1_studydeck_proto_rawDesc), len(file_studydeck_v1_studydeck_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   36,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_studydeck_v1_studydeck_proto_goTypes,
		DependencyIndexes: file_studydeck_v1_studydeck_proto_depIdxs,
		MessageInfos:      file_studydeck_v1_studydeck_proto_msgTypes,
	}.Build()
	File_studydeck_v1_studydeck_proto = out.File
	file_studydeck_v1_studydeck_proto_goTypes = nil
	file_studydeck_v1_studydeck_proto_depIdxs = nil
}
