package dynamodb

import (
	"context"
	"strconv"

	"hr-platform/internal/hr"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// counterKey is the reserved item that holds the last assigned ID of a table.
// Real entities always have Id > 0.
const counterKey = 0

type Store struct {
	client *dynamodb.Client

	employeesTable *string
	requestsTable  *string
}

func NewStore(client *dynamodb.Client, employeesTable, requestsTable string) *Store {
	return &Store{
		client:         client,
		employeesTable: aws.String(employeesTable),
		requestsTable:  aws.String(requestsTable),
	}
}

func (s *Store) ListEmployees(ctx context.Context) ([]hr.Employee, error) {
	items, err := s.scan(ctx, s.employeesTable)
	if err != nil {
		return nil, err
	}

	employees := make([]hr.Employee, 0, len(items))
	for _, item := range items {
		rec := new(employeeRecord)
		err = attributevalue.UnmarshalMap(item, rec)
		if err != nil {
			return nil, errors.Wrap(err, "unmarshal failed")
		}

		employees = append(employees, rec.toEmployee())
	}

	sortByID(employees, func(e hr.Employee) int { return e.ID })

	return employees, nil
}

func (s *Store) GetEmployee(ctx context.Context, id int) (*hr.Employee, error) {
	item, err := s.get(ctx, s.employeesTable, id)
	if err != nil {
		return nil, err
	}
	if len(item) == 0 {
		return nil, hr.ErrEmployeeNotFound
	}

	rec := new(employeeRecord)
	err = attributevalue.UnmarshalMap(item, rec)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal failed")
	}

	employee := rec.toEmployee()

	return &employee, nil
}

func (s *Store) CreateEmployee(ctx context.Context, employee *hr.Employee) error {
	id, err := s.allocateID(ctx, s.employeesTable)
	if err != nil {
		return err
	}

	employee.ID = id

	return s.put(ctx, s.employeesTable, newEmployeeRecord(employee))
}

func (s *Store) UpdateEmployee(ctx context.Context, employee *hr.Employee) error {
	return s.put(ctx, s.employeesTable, newEmployeeRecord(employee))
}

func (s *Store) DeleteEmployee(ctx context.Context, id int) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: s.employeesTable,
		Key:       idKey(id),
	})
	if err != nil {
		return errors.Wrap(err, "delete failed")
	}

	return nil
}

func (s *Store) ListLeaveRequests(ctx context.Context, filter hr.LeaveFilter) ([]hr.LeaveRequest, error) {
	items, err := s.scan(ctx, s.requestsTable)
	if err != nil {
		return nil, err
	}

	requests := make([]hr.LeaveRequest, 0, len(items))
	for _, item := range items {
		rec := new(leaveRequestRecord)
		err = attributevalue.UnmarshalMap(item, rec)
		if err != nil {
			return nil, errors.Wrap(err, "unmarshal failed")
		}

		request, err := rec.toLeaveRequest()
		if err != nil {
			return nil, err
		}

		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && request.EmployeeID != *filter.EmployeeID {
			continue
		}

		requests = append(requests, *request)
	}

	sortByID(requests, func(r hr.LeaveRequest) int { return r.ID })

	return requests, nil
}

func (s *Store) GetLeaveRequest(ctx context.Context, id int) (*hr.LeaveRequest, error) {
	item, err := s.get(ctx, s.requestsTable, id)
	if err != nil {
		return nil, err
	}
	if len(item) == 0 {
		return nil, hr.ErrLeaveRequestNotFound
	}

	rec := new(leaveRequestRecord)
	err = attributevalue.UnmarshalMap(item, rec)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal failed")
	}

	return rec.toLeaveRequest()
}

func (s *Store) CreateLeaveRequest(ctx context.Context, request *hr.LeaveRequest) error {
	id, err := s.allocateID(ctx, s.requestsTable)
	if err != nil {
		return err
	}

	request.ID = id

	return s.put(ctx, s.requestsTable, newLeaveRequestRecord(request))
}

func (s *Store) UpdateLeaveRequest(ctx context.Context, request *hr.LeaveRequest) error {
	return s.put(ctx, s.requestsTable, newLeaveRequestRecord(request))
}

func (s *Store) put(ctx context.Context, table *string, record interface{}) error {
	marshaled, err := attributevalue.MarshalMap(record)
	if err != nil {
		return errors.Wrap(err, "marshal failed")
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: table,
		Item:      marshaled,
	})
	if err != nil {
		return errors.Wrap(err, "put failed")
	}

	return nil
}

func (s *Store) get(ctx context.Context, table *string, id int) (map[string]types.AttributeValue, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: table,
		Key:       idKey(id),
	})
	if err != nil {
		return nil, errors.Wrap(err, "get failed")
	}

	return out.Item, nil
}

func (s *Store) scan(ctx context.Context, table *string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        table,
			FilterExpression: aws.String("Id > :zero"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":zero": &types.AttributeValueMemberN{Value: strconv.Itoa(counterKey)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, errors.Wrap(err, "scan failed")
		}

		items = append(items, out.Items...)

		if out.LastEvaluatedKey == nil {
			break
		}

		startKey = out.LastEvaluatedKey
	}

	return items, nil
}

// allocateID atomically increments the table's counter item and returns the
// new value.
func (s *Store) allocateID(ctx context.Context, table *string) (int, error) {
	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        table,
		Key:              idKey(counterKey),
		UpdateExpression: aws.String("ADD LastId :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, errors.Wrap(err, "counter update failed")
	}

	var last int
	err = attributevalue.Unmarshal(out.Attributes["LastId"], &last)
	if err != nil {
		return 0, errors.Wrap(err, "counter unmarshal failed")
	}

	return last, nil
}

func idKey(id int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"Id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
	}
}
